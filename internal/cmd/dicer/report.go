package dicer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/dicer/internal/services/dice/roller"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by -output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type termReport struct {
	Term    string `json:"term" yaml:"term"`
	Results []int  `json:"results" yaml:"results,flow"`
	Total   int64  `json:"total" yaml:"total"`
}

type rollReport struct {
	Expression string       `json:"expression" yaml:"expression"`
	Normalized string       `json:"normalized" yaml:"normalized"`
	Terms      []string     `json:"terms" yaml:"terms,flow"`
	Seed       int64        `json:"seed" yaml:"seed"`
	SeedSource string       `json:"seed_source" yaml:"seed_source"`
	Rolls      []termReport `json:"rolls,omitempty" yaml:"rolls,omitempty"`
	Minimum    int64        `json:"minimum" yaml:"minimum"`
	Maximum    int64        `json:"maximum" yaml:"maximum"`
	Total      int64        `json:"total" yaml:"total"`
}

func newRollReport(result roller.Result) rollReport {
	report := rollReport{
		Expression: result.Expression,
		Normalized: result.Normalized,
		Terms:      result.Terms,
		Seed:       result.Seed,
		SeedSource: string(result.SeedSource),
		Minimum:    result.Outcome.Minimum,
		Maximum:    result.Outcome.Maximum,
		Total:      result.Outcome.Total,
	}
	for _, roll := range result.Outcome.Rolls {
		report.Rolls = append(report.Rolls, termReport{
			Term:    roll.Entity.String(),
			Results: roll.Results,
			Total:   roll.Total,
		})
	}
	return report
}

func validOutput(format string) bool {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// writeResult renders result in format. Text output is the one-line total
// unless verbose is set; structured formats always carry the full report.
func writeResult(out io.Writer, format string, verbose bool, result roller.Result) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newRollReport(result))
	case OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newRollReport(result)); err != nil {
			return err
		}
		return enc.Close()
	}

	if !verbose {
		_, err := fmt.Fprintf(out, "result: %d\n", result.Outcome.Total)
		return err
	}
	report := newRollReport(result)
	var b strings.Builder
	fmt.Fprintf(&b, "expression: %s\n", report.Expression)
	fmt.Fprintf(&b, "normalized: %s\n", report.Normalized)
	fmt.Fprintf(&b, "terms: %s\n", strings.Join(report.Terms, " "))
	fmt.Fprintf(&b, "seed: %d (%s)\n", report.Seed, report.SeedSource)
	for _, roll := range report.Rolls {
		fmt.Fprintf(&b, "roll %s: %v = %d\n", roll.Term, roll.Results, roll.Total)
	}
	fmt.Fprintf(&b, "minimum: %d\n", report.Minimum)
	fmt.Fprintf(&b, "maximum: %d\n", report.Maximum)
	fmt.Fprintf(&b, "result: %d\n", report.Total)
	_, err := io.WriteString(out, b.String())
	return err
}
