package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/designfmt/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// LoadAttributes parses an HCL file and evaluates every top-level attribute.
func LoadAttributes(ctx context.Context, path string) (map[string]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL attributes.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return evaluate(ctx, file.Body, path)
}

// ParseAttributes is like LoadAttributes but reads HCL source from memory.
// The filename is only used in diagnostics.
func ParseAttributes(ctx context.Context, src []byte, filename string) (map[string]cty.Value, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}
	return evaluate(ctx, file.Body, filename)
}
