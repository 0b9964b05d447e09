package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"hr-recommendation/internal/recommendation"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type result struct {
	Source          string                          `json:"source,omitempty" yaml:"source,omitempty"`
	FallbackReason  string                          `json:"fallback_reason,omitempty" yaml:"fallback_reason,omitempty"`
	Recommendations []recommendation.Recommendation `json:"recommendations" yaml:"recommendations"`
}

func writeResult(w io.Writer, format string, r result) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case formatTable:
		if r.Source != "" {
			line := "Source: " + r.Source
			if r.FallbackReason != "" {
				line += " (" + r.FallbackReason + ")"
			}
			fmt.Fprintln(w, line)
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tPRIORITY\tTITLE\tICON\tDESCRIPTION")
		for i, rec := range r.Recommendations {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, rec.Priority, rec.Title, rec.Icon, rec.Description)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}
