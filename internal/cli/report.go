package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/knapsolver/knapsack"
	"github.com/katalvlaran/knapsolver/solver"
)

// Report is the serialisable outcome of a solve command.
type Report struct {
	Instance  string      `json:"instance" yaml:"instance"`
	Algorithm string      `json:"algorithm" yaml:"algorithm"`
	Items     int         `json:"items" yaml:"items"`
	Capacity  int64       `json:"capacity" yaml:"capacity"`
	Value     int64       `json:"value" yaml:"value"`
	Bound     int64       `json:"bound" yaml:"bound"`
	Optimal   bool        `json:"optimal" yaml:"optimal"`
	Weight    int64       `json:"weight" yaml:"weight"`
	Solution  []int       `json:"solution" yaml:"solution"`
	TimeMS    float64     `json:"time_ms" yaml:"time_ms"`
	Stats     ReportStats `json:"stats" yaml:"stats"`
}

// ReportStats mirrors solver.Stats.
type ReportStats struct {
	Iterations      int `json:"iterations" yaml:"iterations"`
	MaxFrontierSize int `json:"max_frontier_size" yaml:"max_frontier_size"`
	RecursiveCalls  int `json:"recursive_calls" yaml:"recursive_calls"`
	PairingMoves    int `json:"pairing_moves" yaml:"pairing_moves"`
}

// newReport flattens a result. The solution is listed only when it
// realises the value.
func newReport(path, algorithm string, inst *knapsack.Instance, res *solver.Result) Report {
	r := Report{
		Instance:  path,
		Algorithm: algorithm,
		Items:     inst.NumberOfItems(),
		Capacity:  inst.Capacity(),
		Value:     res.Value,
		Bound:     res.Bound,
		Optimal:   res.Optimal(),
		Solution:  []int{},
		TimeMS:    float64(res.Time.Microseconds()) / 1000,
		Stats: ReportStats{
			Iterations:      res.Stats.Iterations,
			MaxFrontierSize: res.Stats.MaxFrontierSize,
			RecursiveCalls:  res.Stats.RecursiveCalls,
			PairingMoves:    res.Stats.PairingMoves,
		},
	}
	if res.HasSolution() {
		r.Weight = res.Solution.Weight()
		r.Solution = res.Solution.Items()
	}
	return r
}

// writeReport encodes r as text, JSON or YAML.
func writeReport(w io.Writer, r Report, format string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case OutputText:
		_, err := fmt.Fprintf(w,
			"instance:   %s\nalgorithm:  %s\nitems:      %d\ncapacity:   %d\nvalue:      %d\nbound:      %d\noptimal:    %t\nweight:     %d\nsolution:   %v\ntime:       %.3fms\niterations: %d\n",
			r.Instance, r.Algorithm, r.Items, r.Capacity, r.Value, r.Bound, r.Optimal, r.Weight,
			r.Solution, r.TimeMS, r.Stats.Iterations)
		return err
	}
	return fmt.Errorf("%w: output format %q", ErrInvalidConfig, format)
}
