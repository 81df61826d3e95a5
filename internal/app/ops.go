package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/designfmt/internal/fsutil"
	"github.com/vk/designfmt/internal/hcl"
)

// attributeExtensions lists the file types Attributes understands.
var attributeExtensions = []string{".hcl", ".yaml", ".yml"}

// Normalize parses value as the named type and formats it again, giving
// the canonical attribute form.
func (a *App) Normalize(typeName, value string) (string, error) {
	t, err := LookupType(typeName)
	if err != nil {
		return "", err
	}

	parsed, err := a.formatter.Parse(value, t)
	if err != nil {
		return "", err
	}
	a.logger.Debug("Parsed value.", "type", typeName, "value", value)

	return a.formatter.Format(parsed)
}

// Check parses every value as the named type and returns one error per
// invalid value, in input order.
func (a *App) Check(typeName string, values ...string) ([]error, error) {
	t, err := LookupType(typeName)
	if err != nil {
		return nil, err
	}

	var failures []error
	for _, v := range values {
		if _, err := a.formatter.Parse(v, t); err != nil {
			a.logger.Debug("Value rejected.", "type", typeName, "value", v, "error", err)
			failures = append(failures, err)
		}
	}
	return failures, nil
}

// Attributes reads an HCL or YAML attribute file and returns every
// attribute in its canonical string form.
func (a *App) Attributes(path string) (map[string]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		values, err := hcl.LoadAttributes(a.ctx, path)
		if err != nil {
			return nil, err
		}
		return hcl.ToAttributes(a.ctx, a.formatter, values)
	case ".yaml", ".yml":
		return loadYAMLAttributes(a.ctx, a.formatter, path)
	default:
		return nil, fmt.Errorf("unsupported attribute file extension %q, expected one of %v", ext, attributeExtensions)
	}
}

// AttributeFiles expands path into the attribute files to read: the path
// itself for a file, or every attribute file below it for a directory.
func (a *App) AttributeFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	files, err := fsutil.FindFilesByExtension(path, attributeExtensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", path, err)
	}
	if len(files) == 0 {
		a.logger.Warn("No attribute files found.", "path", path)
	}
	a.logger.Debug("Found attribute files.", "path", path, "count", len(files))
	return files, nil
}
