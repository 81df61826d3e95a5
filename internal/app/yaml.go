package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vk/designfmt/internal/ctxlog"
	"github.com/vk/designfmt/internal/design"
	"gopkg.in/yaml.v3"
)

// loadYAMLAttributes reads a flat YAML mapping and formats each scalar.
func loadYAMLAttributes(ctx context.Context, f *design.Formatter, path string) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML attributes.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read attribute file: %w", err)
	}
	return parseYAMLAttributes(ctx, f, data)
}

func parseYAMLAttributes(ctx context.Context, f *design.Formatter, data []byte) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML attributes: %w", err)
	}

	out := make(map[string]string, len(raw))
	for name, v := range raw {
		switch v.(type) {
		case bool, int, int64, float64, string, time.Time:
		default:
			return nil, fmt.Errorf("in attribute '%s': cannot format YAML value of type %T", name, v)
		}

		s, err := f.Format(v)
		if err != nil {
			return nil, fmt.Errorf("in attribute '%s': %w", name, err)
		}
		logger.Debug("Formatted attribute.", "attribute", name, "source_type", fmt.Sprintf("%T", v))
		out[name] = s
	}
	return out, nil
}
