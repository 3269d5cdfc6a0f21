// Package configs provides embedded configuration files for tapline.
package configs

import _ "embed"

// DefaultScenarioYAML contains the default scenario file content.
//
//go:embed default.yaml
var DefaultScenarioYAML []byte
