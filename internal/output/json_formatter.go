package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the report section as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report.Payload(), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter serializes the report section as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	return yaml.Marshal(report.Payload())
}
