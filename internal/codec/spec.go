package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"rrgraph/internal/domain"
)

// ParseBuildSpec reads a YAML build spec. Unknown keys are rejected.
func ParseBuildSpec(r io.Reader) (*domain.BuildSpec, error) {
	var spec domain.BuildSpec
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("failed to parse build spec: %w", err)
	}

	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid build spec: %w", err)
	}

	return &spec, nil
}
