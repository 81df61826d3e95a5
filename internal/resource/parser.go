// internal/resource/parser.go
package resource

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	themePrefix    = "theme://"
	fontIconPrefix = "fonticon://"
	filePrefix     = "file://"
)

// schemeRegex matches the scheme of a URL written as `scheme://...`.
var schemeRegex = regexp.MustCompile(`^([a-zA-Z][a-zA-Z0-9+.-]*)://`)

// externalSchemes lists the URL schemes that denote an External resource.
var externalSchemes = map[string]struct{}{
	"http":  {},
	"https": {},
	"ftp":   {},
	"ftps":  {},
}

// Parse creates a Resource from its canonical string representation.
func Parse(raw string) (Resource, error) {
	if raw == "" {
		return nil, fmt.Errorf("resource reference cannot be empty")
	}

	switch {
	case strings.HasPrefix(raw, themePrefix):
		path := strings.TrimPrefix(raw, themePrefix)
		if path == "" {
			return nil, fmt.Errorf("theme resource %q has no path", raw)
		}
		return Theme{Path: path}, nil

	case strings.HasPrefix(raw, fontIconPrefix):
		return parseFontIcon(strings.TrimPrefix(raw, fontIconPrefix))

	case strings.HasPrefix(raw, filePrefix):
		path := strings.TrimPrefix(raw, filePrefix)
		if path == "" {
			return nil, fmt.Errorf("file resource %q has no path", raw)
		}
		return File{Path: path}, nil
	}

	matches := schemeRegex.FindStringSubmatch(raw)
	if matches == nil {
		// No scheme at all, so it is a plain file path.
		return File{Path: raw}, nil
	}

	scheme := strings.ToLower(matches[1])
	if _, ok := externalSchemes[scheme]; !ok {
		return nil, fmt.Errorf("unsupported resource scheme %q", matches[1])
	}
	return External{URL: raw}, nil
}

// parseFontIcon parses the `family/hexcodepoint` part of a font icon reference.
func parseFontIcon(rest string) (Resource, error) {
	family, hex, ok := strings.Cut(rest, "/")
	if !ok || family == "" || hex == "" {
		return nil, fmt.Errorf("font icon %q must be of the form family/codepoint", rest)
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid font icon codepoint %q: %w", hex, err)
	}
	if cp > unicode.MaxRune {
		return nil, fmt.Errorf("font icon codepoint %q is beyond the unicode range", hex)
	}
	return FontIcon{Family: family, Codepoint: rune(cp)}, nil
}

// Format serializes a Resource into its canonical string representation.
func Format(r Resource) (string, error) {
	switch v := r.(type) {
	case External:
		return v.URL, nil
	case Theme:
		return themePrefix + v.Path, nil
	case File:
		if v.Path == "" {
			return "", fmt.Errorf("file resource has no path")
		}
		// A bare path that looks like a URL would read back as another variant.
		if schemeRegex.MatchString(v.Path) {
			return filePrefix + v.Path, nil
		}
		return v.Path, nil
	case FontIcon:
		if v.Codepoint < 0 || v.Codepoint > unicode.MaxRune {
			return "", fmt.Errorf("font icon codepoint %d is outside the unicode range", v.Codepoint)
		}
		return fontIconPrefix + v.Family + "/" + strconv.FormatInt(int64(v.Codepoint), 16), nil
	case nil:
		return "", fmt.Errorf("resource cannot be nil")
	default:
		return "", fmt.Errorf("unsupported resource type %T", r)
	}
}
