package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"
)

// Format selects a report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. Matching is case-insensitive and
// "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type resultView struct {
	Topic    string `json:"topic" yaml:"topic"`
	Name     string `json:"name" yaml:"name"`
	Passed   bool   `json:"passed" yaml:"passed"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Duration string `json:"duration" yaml:"duration"`
}

type reportView struct {
	RunID    string       `json:"run_id" yaml:"run_id"`
	Started  time.Time    `json:"started" yaml:"started"`
	Duration string       `json:"duration" yaml:"duration"`
	Passed   int          `json:"passed" yaml:"passed"`
	Failed   int          `json:"failed" yaml:"failed"`
	Results  []resultView `json:"results" yaml:"results"`
}

func newReportView(r Report) reportView {
	v := reportView{
		RunID:    r.RunID.String(),
		Started:  r.Started.UTC(),
		Duration: r.Duration.String(),
		Passed:   r.Passed,
		Failed:   r.Failed,
		Results:  make([]resultView, 0, len(r.Results)),
	}
	for _, res := range r.Results {
		rv := resultView{
			Topic:    res.Topic,
			Name:     res.Name,
			Passed:   res.Passed,
			Duration: res.Duration.String(),
		}
		if res.Err != nil {
			rv.Error = res.Err.Error()
		}
		v.Results = append(v.Results, rv)
	}
	return v
}

// WriteReport encodes r to w in the given format.
func WriteReport(w io.Writer, r Report, f Format) error {
	switch f {
	case FormatText:
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newReportView(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newReportView(r)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func writeText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, res := range r.Results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s/%s\t%s\n", status, res.Topic, res.Name, res.Duration)
		if res.Err != nil {
			for _, line := range strings.Split(strings.TrimRight(res.Err.Error(), "\n"), "\n") {
				fmt.Fprintf(tw, "\t    %s\t\n", line)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "run %s: %d passed, %d failed in %s\n", r.RunID, r.Passed, r.Failed, r.Duration)
	return err
}
