package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"pipeline-hud/core/logstore"
	"pipeline-hud/core/model"

	"gopkg.in/yaml.v3"
)

type resourceSummary struct {
	Name          string `json:"name" yaml:"name"`
	Order         int32  `json:"order" yaml:"order"`
	RuntimeStatus string `json:"runtime_status,omitempty" yaml:"runtime_status,omitempty"`
	UpdateStatus  string `json:"update_status,omitempty" yaml:"update_status,omitempty"`
	LastError     string `json:"last_error,omitempty" yaml:"last_error,omitempty"`
}

type viewSummary struct {
	Epoch     string            `json:"epoch" yaml:"epoch"`
	CreatedAt string            `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Resources []resourceSummary `json:"resources" yaml:"resources"`
	Buttons   []string          `json:"buttons" yaml:"buttons"`
	Clusters  []string          `json:"clusters" yaml:"clusters"`
	LogLines  int               `json:"log_lines" yaml:"log_lines"`
	LogBytes  int               `json:"log_bytes" yaml:"log_bytes"`
}

func summarize(v *model.View, logs *logstore.Store, createdAt string) viewSummary {
	s := viewSummary{
		Epoch:     v.StartTime(),
		CreatedAt: createdAt,
		Resources: make([]resourceSummary, 0, len(v.Resources)),
		Buttons:   make([]string, 0, len(v.Buttons)),
		Clusters:  make([]string, 0, len(v.Clusters)),
	}
	for _, r := range v.Resources {
		rs := resourceSummary{
			Name:          r.GetName(),
			Order:         r.OrderHint(),
			RuntimeStatus: r.Status.RuntimeStatus,
			UpdateStatus:  r.Status.UpdateStatus,
		}
		if len(r.Status.BuildHistory) > 0 {
			rs.LastError = r.Status.BuildHistory[0].Error
		}
		s.Resources = append(s.Resources, rs)
	}
	for _, b := range v.Buttons {
		s.Buttons = append(s.Buttons, b.GetName())
	}
	for _, c := range v.Clusters {
		s.Clusters = append(s.Clusters, c.GetName())
	}
	if logs != nil {
		s.LogLines = len(logs.Lines())
		s.LogBytes = logs.Len()
	}
	return s
}

func writeSummary(w io.Writer, s viewSummary, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	default:
		return fmt.Errorf("unknown output format %q (json or yaml)", format)
	}
}
