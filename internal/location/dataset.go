// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package location

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taibuivan/tpnlocations/internal/platform/apperr"
)

//go:embed data/locations.json
var bundledDataset []byte

// Dataset formats recognised by file extension.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// datasetFile is the top-level document: {"locations": [...]}.
type datasetFile struct {
	Locations []datasetRecord `json:"locations" yaml:"locations"`
}

// datasetRecord accepts both the current field names and the legacy keys
// (loca, desc, Layout). Any id in the file is ignored.
type datasetRecord struct {
	Name        string  `json:"name" yaml:"name"`
	World       string  `json:"world" yaml:"world"`
	Loca        string  `json:"loca" yaml:"loca"`
	Description *string `json:"description" yaml:"description"`
	Desc        *string `json:"desc" yaml:"desc"`
	Img         *string `json:"img" yaml:"img"`
	Facilities  *string `json:"facilities" yaml:"facilities"`
	LayoutInfo  *string `json:"layout_info" yaml:"layout_info"`
	Layout      *string `json:"Layout" yaml:"Layout"`
}

func (record datasetRecord) toInput() CreateInput {
	input := CreateInput{
		Name:        record.Name,
		World:       record.World,
		Description: record.Description,
		Img:         record.Img,
		Facilities:  record.Facilities,
		LayoutInfo:  record.LayoutInfo,
	}
	if input.World == "" {
		input.World = record.Loca
	}
	if input.Description == nil {
		input.Description = record.Desc
	}
	if input.LayoutInfo == nil {
		input.LayoutInfo = record.Layout
	}
	return input
}

// LoadDataset reads the seed dataset from path, or the bundled dataset when
// path is empty. Every record is validated before anything is returned.
func LoadDataset(path string) ([]CreateInput, error) {
	if path == "" {
		return ParseDataset(bundledDataset, FormatJSON)
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("dataset: unsupported file type %q (want .json, .yaml or .yml)", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: reading %s: %w", path, err)
	}

	return ParseDataset(data, format)
}

// ParseDataset decodes and validates a dataset document.
func ParseDataset(data []byte, format string) ([]CreateInput, error) {
	var file datasetFile

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("dataset: decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("dataset: decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("dataset: unknown format %q", format)
	}

	if len(file.Locations) == 0 {
		return nil, errors.New("dataset: no locations")
	}

	inputs := make([]CreateInput, len(file.Locations))
	for i, record := range file.Locations {
		input := record.toInput()
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("dataset: record %d (%q): %s", i, record.Name, describeValidation(err))
		}
		inputs[i] = input
	}

	return inputs, nil
}

// describeValidation flattens field errors into one line for startup logs.
func describeValidation(err error) string {
	ae := apperr.As(err)
	if ae == nil || len(ae.Details) == 0 {
		return err.Error()
	}

	parts := make([]string, len(ae.Details))
	for i, detail := range ae.Details {
		parts[i] = detail.Field + ": " + detail.Message
	}
	return strings.Join(parts, "; ")
}
