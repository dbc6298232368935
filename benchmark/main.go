// Package main provides a performance benchmarking tool for the fuzzyrank CLI.
// It generates decision problems of increasing size with 'fuzzyrank template',
// ranks each one several times without a cache and with a SQLite cache,
// treating the first cached run as cold and averaging the rest as warm, and
// writes the timings to a CSV file.
//
// Prerequisites:
// - fuzzyrank binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for generated problems and the benchmark cache
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ProblemSize is the shape of one generated decision problem.
type ProblemSize struct {
	Name         string
	Experts      int
	Criteria     int
	Alternatives int
}

// BenchmarkResult holds the result of a benchmark run (no-cache average, cold run and average of warm runs).
type BenchmarkResult struct {
	Problem     string
	NoCacheTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	NoCacheRuns int
	CacheRuns   int
	Sizes       []ProblemSize
}

func main() {
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		WorkDir:     os.Args[1],
		Timeout:     2 * time.Minute,
		NoCacheRuns: 3,
		CacheRuns:   4,
		Sizes: []ProblemSize{
			{"small", 3, 5, 4},
			{"medium", 10, 20, 50},
			{"large", 25, 40, 500},
			{"xlarge", 50, 60, 2000},
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the fuzzyrank binary exists and prepares the work dir
func checkPrerequisites(config BenchmarkConfig) error {
	if _, err := exec.LookPath("fuzzyrank"); err != nil {
		return fmt.Errorf("fuzzyrank binary not found in PATH")
	}
	return os.MkdirAll(config.WorkDir, 0o755)
}

// cachePath is the SQLite cache used by the cached phase, kept out of $HOME.
func cachePath(config BenchmarkConfig) string {
	return filepath.Join(config.WorkDir, "benchmark_cache.db")
}

// runBenchmarks generates every problem and benchmarks ranking it
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d problems, %v timeout, no-cache: %d runs, cache: %d runs\n",
		len(config.Sizes), config.Timeout, config.NoCacheRuns, config.CacheRuns)

	// Start from an empty cache so the first cached run is cold
	_ = os.Remove(cachePath(config))

	for _, size := range config.Sizes {
		path, err := generateProblem(config, size)
		if err != nil {
			fmt.Printf("Skipping %s: %v\n", size.Name, err)
			continue
		}
		results = append(results, runBenchmarkSuite(config, size, path))
	}

	return results
}

// generateProblem writes a default-filled problem of the given size
func generateProblem(config BenchmarkConfig, size ProblemSize) (string, error) {
	path := filepath.Join(config.WorkDir, size.Name+".yaml")
	args := append([]string{"template",
		"--experts", strconv.Itoa(size.Experts),
		"--criteria", strconv.Itoa(size.Criteria),
		"--alternatives", strconv.Itoa(size.Alternatives),
		"--cache-backend", "none",
		"--output-file", path,
	}, maxArgs(size)...)
	cmd := exec.Command("fuzzyrank", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("template failed: %w\nOutput: %s", err, string(output))
	}
	return path, nil
}

// maxArgs raises the configured maximums to fit the problem size.
func maxArgs(size ProblemSize) []string {
	return []string{
		"--max-experts", strconv.Itoa(size.Experts),
		"--max-criteria", strconv.Itoa(size.Criteria),
		"--max-alternatives", strconv.Itoa(size.Alternatives),
	}
}

// runBenchmarkSuite runs both no-cache and cache benchmarks for a problem
func runBenchmarkSuite(config BenchmarkConfig, size ProblemSize, path string) BenchmarkResult {
	desc := fmt.Sprintf("%s (%d experts, %d criteria, %d alternatives)", size.Name, size.Experts, size.Criteria, size.Alternatives)
	fmt.Printf("Ranking %s\n", desc)

	// Helper to run a benchmark phase
	runPhase := func(cacheArgs []string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, path, append(cacheArgs, maxArgs(size)...), numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: No-cache runs
	_, noCacheAvg := runPhase([]string{"--cache-backend", "none"}, config.NoCacheRuns, "No-cache")

	// Phase 2: Cache runs
	coldTime, warmAvg := runPhase([]string{"--cache-backend", "sqlite", "--cache-db-connect", cachePath(config)}, config.CacheRuns, "Cache")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-cache average: %s, Cold time: %s, Warm average: %s\n", noCacheAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		Problem:     size.Name,
		NoCacheTime: noCacheAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark ranks the problem multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, path string, cacheArgs []string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := append([]string{"rank", path, "--color", "no"}, cacheArgs...)

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("fuzzyrank", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
			_ = cmd.Process.Kill()
			<-done
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Ranking completed in") &&
		strings.Contains(outputStr, "cache hit")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/fuzzyrank_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"problem", "no_cache_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range results {
		if err := writer.Write([]string{result.Problem, result.NoCacheTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")
	for _, result := range results {
		fmt.Printf("  %-8s: No-cache: %s, Cold: %s, Warm: %s\n", result.Problem, result.NoCacheTime, result.ColdTime, result.WarmTime)
	}
}
