// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

func init() {
	Register(&HCLParser{})
}

// hclConfig mirrors Config for gohcl decoding.
type hclConfig struct {
	Styles         map[string]string `hcl:"styles,optional"`
	Exclude        []string          `hcl:"exclude,optional"`
	IgnorePatterns []string          `hcl:"ignore_patterns,optional"`
	MaxFileSize    int64             `hcl:"max_file_size,optional"`
}

func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var raw hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &raw)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &Config{
		Styles:         raw.Styles,
		Exclude:        raw.Exclude,
		IgnorePatterns: raw.IgnorePatterns,
		MaxFileSize:    raw.MaxFileSize,
	}, nil
}
