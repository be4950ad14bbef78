// Package loader reads build specs from disk.
package loader

import (
	"fmt"
	"os"

	"rrgraph/internal/codec"
	"rrgraph/internal/domain"
)

// LoadBuildSpec reads the YAML build spec at path. Tool fields the spec leaves
// empty are taken from defaults.
func LoadBuildSpec(path string, defaults domain.Tool) (*domain.BuildSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open build spec: %w", err)
	}
	defer f.Close()

	spec, err := codec.ParseBuildSpec(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if spec.Tool.Name == "" {
		spec.Tool.Name = defaults.Name
	}
	if spec.Tool.Version == "" {
		spec.Tool.Version = defaults.Version
	}
	if spec.Tool.Comment == "" {
		spec.Tool.Comment = defaults.Comment
	}

	return spec, nil
}
