// Package benchmarks parses `go test -bench` output for the btree package
// and reports the results against the project's performance targets.
package benchmarks

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Result represents a single parsed benchmark result.
type Result struct {
	// Name is the benchmark name (e.g., "BenchmarkSearch").
	Name string
	// Iterations is the number of iterations run.
	Iterations int
	// NsPerOp is nanoseconds per operation.
	NsPerOp float64
	// BytesPerOp is bytes allocated per operation.
	BytesPerOp int64
	// AllocsPerOp is allocations per operation.
	AllocsPerOp int64
}

// Target is a performance target for one benchmark.
type Target struct {
	// Description is a human-readable description.
	Description string
	// MaxNsPerOp is the maximum allowed nanoseconds per operation.
	MaxNsPerOp float64
	// MinOpsPerSec is the minimum required operations per second.
	MinOpsPerSec float64
}

// Report collects parsed results and the targets to hold them against.
type Report struct {
	Timestamp time.Time
	Results   []Result
	Targets   map[string]Target
}

// NewReport creates a report primed with the default index-core targets.
func NewReport() *Report {
	return &Report{
		Timestamp: time.Now(),
		Targets:   defaultTargets(),
	}
}

// defaultTargets returns the performance targets for the index core on a
// tree of around 100k keys.
func defaultTargets() map[string]Target {
	return map[string]Target{
		"BenchmarkSearch": {
			Description: "point lookup",
			MaxNsPerOp:  2000, // < 2 us
		},
		"BenchmarkInsert": {
			Description:  "insert throughput",
			MinOpsPerSec: 500000,
		},
		"BenchmarkRemove": {
			Description:  "remove throughput",
			MinOpsPerSec: 500000,
		},
		"BenchmarkRangeSearch": {
			Description: "100-key range query",
			MaxNsPerOp:  50000, // < 50 us
		},
	}
}

// benchLine matches one benchmark output line:
// BenchmarkName-N    iterations    ns/op    [B/op]    [allocs/op]
var benchLine = regexp.MustCompile(`^(Benchmark\w+)(?:-\d+)?\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`)

// Parse reads `go test -bench` output and adds every result line found.
func (r *Report) Parse(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		matches := benchLine.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		result := Result{Name: matches[1]}
		result.Iterations, _ = strconv.Atoi(matches[2])
		result.NsPerOp, _ = strconv.ParseFloat(matches[3], 64)
		if matches[4] != "" {
			result.BytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			result.AllocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}
		r.Results = append(r.Results, result)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading benchmark output: %w", err)
	}
	return nil
}

// Check is the verdict of one result against its target.
type Check struct {
	Name            string
	Description     string
	Passed          bool
	ActualNsPerOp   float64
	TargetNsPerOp   float64
	ActualOpsPerSec float64
	TargetOpsPerSec float64
}

// CheckTargets evaluates every result that has a matching target.
func (r *Report) CheckTargets() []Check {
	var checks []Check
	for _, result := range r.Results {
		target, ok := r.Targets[result.Name]
		if !ok {
			continue
		}

		check := Check{
			Name:          result.Name,
			Description:   target.Description,
			ActualNsPerOp: result.NsPerOp,
		}
		if target.MaxNsPerOp > 0 {
			check.TargetNsPerOp = target.MaxNsPerOp
			check.Passed = result.NsPerOp <= target.MaxNsPerOp
		} else if target.MinOpsPerSec > 0 {
			check.ActualOpsPerSec = 1e9 / result.NsPerOp
			check.TargetOpsPerSec = target.MinOpsPerSec
			check.Passed = check.ActualOpsPerSec >= target.MinOpsPerSec
		}
		checks = append(checks, check)
	}
	return checks
}

// WriteText renders the report as a plain-text table followed by the
// target compliance summary.
func (r *Report) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "=== ironwood benchmark report ===\n\n")
	fmt.Fprintf(w, "Generated: %s\n\n", r.Timestamp.Format(time.RFC3339))

	results := make([]Result, len(r.Results))
	copy(results, r.Results)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Name < results[j].Name
	})

	fmt.Fprintf(w, "%-40s %12s %12s %10s %12s\n",
		"Benchmark", "Iterations", "ns/op", "B/op", "allocs/op")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, result := range results {
		fmt.Fprintf(w, "%-40s %12d %12.2f %10d %12d\n",
			result.Name, result.Iterations, result.NsPerOp,
			result.BytesPerOp, result.AllocsPerOp)
	}
	fmt.Fprintln(w)

	checks := r.CheckTargets()
	if len(checks) == 0 {
		return nil
	}

	fmt.Fprintln(w, "=== target compliance ===")
	fmt.Fprintln(w)
	allPassed := true
	for _, check := range checks {
		status := "PASS"
		if !check.Passed {
			status = "FAIL"
			allPassed = false
		}

		var actual, target string
		if check.TargetNsPerOp > 0 {
			actual = formatDuration(check.ActualNsPerOp)
			target = fmt.Sprintf("< %s", formatDuration(check.TargetNsPerOp))
		} else {
			actual = formatOpsPerSec(check.ActualOpsPerSec)
			target = fmt.Sprintf(">= %s", formatOpsPerSec(check.TargetOpsPerSec))
		}
		fmt.Fprintf(w, "%-40s %-24s %12s %14s %6s\n",
			check.Name, check.Description, actual, target, status)
	}

	fmt.Fprintln(w)
	if allPassed {
		fmt.Fprintln(w, "All targets met.")
	} else {
		fmt.Fprintln(w, "WARNING: some targets not met.")
	}
	return nil
}

// formatDuration renders nanoseconds in the most readable unit.
func formatDuration(ns float64) string {
	switch {
	case ns >= 1e9:
		return fmt.Sprintf("%.2fs", ns/1e9)
	case ns >= 1e6:
		return fmt.Sprintf("%.2fms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.2fus", ns/1e3)
	default:
		return fmt.Sprintf("%.0fns", ns)
	}
}

// formatOpsPerSec renders an ops/sec figure with a thousands suffix.
func formatOpsPerSec(ops float64) string {
	switch {
	case ops >= 1e6:
		return fmt.Sprintf("%.2fM/s", ops/1e6)
	case ops >= 1e3:
		return fmt.Sprintf("%.2fk/s", ops/1e3)
	default:
		return fmt.Sprintf("%.0f/s", ops)
	}
}
