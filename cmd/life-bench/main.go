package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"colony/internal/app"
	"colony/internal/loader"
	"colony/internal/sims/life"
)

type intList []int

func (l *intList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*l = append(*l, v)
	}
	return nil
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 200, "generations to compute per run")
	out := flag.String("out", "", "write the final generation to this file")
	var workers intList
	flag.Var(&workers, "sweep", "comma-separated worker counts to compare (default 1,2,4,...,NumCPU)")
	flag.Parse()

	if len(workers) == 0 {
		for w := 1; w < runtime.NumCPU(); w *= 2 {
			workers = append(workers, w)
		}
		workers = append(workers, runtime.NumCPU())
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	initial, err := cfg.InitialGrid()
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := initial.Dimensions()
	fmt.Printf("Running %dx%d grid for %d generations with workers %s (initial population %d)\n",
		cols, rows, *steps, workers.String(), initial.Population())

	start := time.Now()
	results, err := life.Sweep(initial, *steps, workers)
	for _, res := range results {
		fmt.Printf("workers=%3d elapsed=%-12s per-gen=%-12s population=%d\n",
			res.Workers, res.Elapsed.Round(time.Microsecond), res.PerStep().Round(time.Microsecond), res.Final.Population())
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nAll runs agree (elapsed %s)\n", time.Since(start).Round(time.Millisecond))

	if *out != "" {
		if err := loader.Save(*out, results[len(results)-1].Final); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Final generation written to %s\n", *out)
	}
}
