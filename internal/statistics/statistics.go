package statistics

import (
	"fmt"
	"math"
	"sort"
)

// TableResult is the outcome of dealing a single random table
type TableResult struct {
	Seed      int64 // RNG seed for this table (for replay)
	TableSize int   // Cards on the table
	Sets      int   // Sets found among them
}

// Statistics accumulates set counts over many dealt tables
type Statistics struct {
	Tables    int
	SumSets   float64
	SumSets2  float64     // Sum of squares for variance calculation
	Histogram map[int]int // Set count -> number of tables
	MaxSets   int
	MaxSeed   int64 // Seed of the first table reaching MaxSets
	NoSets    int   // Tables without a single set
}

// Add incorporates a new table result into the statistics
func (s *Statistics) Add(result TableResult) {
	if s.Histogram == nil {
		s.Histogram = make(map[int]int)
	}

	n := float64(result.Sets)
	s.Tables++
	s.SumSets += n
	s.SumSets2 += n * n
	s.Histogram[result.Sets]++

	if result.Sets == 0 {
		s.NoSets++
	}
	if result.Sets > s.MaxSets || s.Tables == 1 {
		s.MaxSets = result.Sets
		s.MaxSeed = result.Seed
	}
}

// Merge folds other into s. Used to combine per-worker statistics.
func (s *Statistics) Merge(other *Statistics) {
	if other == nil || other.Tables == 0 {
		return
	}
	if s.Histogram == nil {
		s.Histogram = make(map[int]int)
	}
	if s.Tables == 0 || other.MaxSets > s.MaxSets {
		s.MaxSets = other.MaxSets
		s.MaxSeed = other.MaxSeed
	}
	s.Tables += other.Tables
	s.SumSets += other.SumSets
	s.SumSets2 += other.SumSets2
	s.NoSets += other.NoSets
	for k, v := range other.Histogram {
		s.Histogram[k] += v
	}
}

// Mean returns the average number of sets per table
func (s *Statistics) Mean() float64 {
	if s.Tables == 0 {
		return 0
	}
	return s.SumSets / float64(s.Tables)
}

// Variance returns the sample variance of set counts
func (s *Statistics) Variance() float64 {
	if s.Tables < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSets2 - float64(s.Tables)*mean*mean) / float64(s.Tables-1)
}

// StdDev returns the sample standard deviation of set counts
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Tables == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Tables))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// NoSetRate returns the fraction of tables that held no set
func (s *Statistics) NoSetRate() float64 {
	if s.Tables == 0 {
		return 0
	}
	return float64(s.NoSets) / float64(s.Tables)
}

// Median returns the median set count
func (s *Statistics) Median() int {
	if s.Tables == 0 {
		return 0
	}
	mid := (s.Tables - 1) / 2
	seen := 0
	for _, k := range s.Counts() {
		seen += s.Histogram[k]
		if seen > mid {
			return k
		}
	}
	return s.MaxSets
}

// Counts returns the distinct set counts observed, ascending
func (s *Statistics) Counts() []int {
	keys := make([]int, 0, len(s.Histogram))
	for k := range s.Histogram {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Validate checks that the accumulated totals are consistent
func (s *Statistics) Validate() error {
	if s.Tables < 0 {
		return fmt.Errorf("negative table count: %d", s.Tables)
	}

	total := 0
	sum := 0
	for k, v := range s.Histogram {
		if k < 0 || v < 0 {
			return fmt.Errorf("invalid histogram entry %d: %d", k, v)
		}
		total += v
		sum += k * v
	}
	if total != s.Tables {
		return fmt.Errorf("histogram holds %d tables, expected %d", total, s.Tables)
	}
	if float64(sum) != s.SumSets {
		return fmt.Errorf("histogram sums to %d sets, expected %.0f", sum, s.SumSets)
	}
	if s.NoSets != s.Histogram[0] {
		return fmt.Errorf("no-set tables %d do not match histogram %d", s.NoSets, s.Histogram[0])
	}
	return nil
}
