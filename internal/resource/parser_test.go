// internal/resource/parser_test.go
package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		expectErr bool
		expected  Resource
	}{
		{
			name:     "http url",
			raw:      "http://example.com/my%20icon.png?a=b",
			expected: External{URL: "http://example.com/my%20icon.png?a=b"},
		},
		{
			name:     "ftps url",
			raw:      "ftps://example.com/my%20icon.png?a=b",
			expected: External{URL: "ftps://example.com/my%20icon.png?a=b"},
		},
		{
			name:     "upper case scheme is kept verbatim",
			raw:      "HTTPS://example.com/",
			expected: External{URL: "HTTPS://example.com/"},
		},
		{
			name:     "theme resource",
			raw:      "theme://img/logo.png",
			expected: Theme{Path: "img/logo.png"},
		},
		{
			name:     "plain file path",
			raw:      "img/logo.png",
			expected: File{Path: "img/logo.png"},
		},
		{
			name:     "file url",
			raw:      "file:///var/www/logo.png",
			expected: File{Path: "/var/www/logo.png"},
		},
		{
			name:     "font icon",
			raw:      "fonticon://FontAwesome/f0c0",
			expected: FontIcon{Family: "FontAwesome", Codepoint: 0xf0c0},
		},
		{
			name:      "error - empty",
			raw:       "",
			expectErr: true,
		},
		{
			name:      "error - unknown scheme",
			raw:       "gopher://example.com/",
			expectErr: true,
		},
		{
			name:      "error - theme without path",
			raw:       "theme://",
			expectErr: true,
		},
		{
			name:      "error - font icon without codepoint",
			raw:       "fonticon://FontAwesome",
			expectErr: true,
		},
		{
			name:      "error - font icon with bad codepoint",
			raw:       "fonticon://FontAwesome/zz",
			expectErr: true,
		},
		{
			name:      "error - font icon beyond unicode",
			raw:       "fonticon://FontAwesome/110000",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Parse(tc.raw)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, res)
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, raw := range []string{
		"https://example.com/my%20icon.png?a=b",
		"theme://img/logo.png",
		"img/logo.png",
		"fonticon://FontAwesome/f0c0",
	} {
		t.Run(raw, func(t *testing.T) {
			res, err := Parse(raw)
			require.NoError(t, err)

			formatted, err := Format(res)
			require.NoError(t, err)
			assert.Equal(t, raw, formatted)
		})
	}
}

func TestFormat_ValueRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		res      Resource
		expected string
	}{
		{"plain file path", File{Path: "img/logo.png"}, "img/logo.png"},
		{"file path with external scheme", File{Path: "http://host/x.png"}, "file://http://host/x.png"},
		{"file path with theme scheme", File{Path: "theme://a.png"}, "file://theme://a.png"},
		{"file path with unknown scheme", File{Path: "svn://repo/x"}, "file://svn://repo/x"},
		{"file path with file scheme", File{Path: "file://x"}, "file://file://x"},
		{"highest codepoint", FontIcon{Family: "Icons", Codepoint: 0x10ffff}, "fonticon://Icons/10ffff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatted, err := Format(tc.res)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, formatted)

			parsed, err := Parse(formatted)
			require.NoError(t, err)
			assert.Equal(t, tc.res, parsed)
		})
	}
}

func TestFormat_Errors(t *testing.T) {
	testCases := []struct {
		name string
		res  Resource
	}{
		{"nil", nil},
		{"nil pointer variant", (*External)(nil)},
		{"pointer variant", &Theme{Path: "a"}},
		{"empty file path", File{}},
		{"negative codepoint", FontIcon{Family: "Icons", Codepoint: -1}},
		{"codepoint beyond unicode", FontIcon{Family: "Icons", Codepoint: 0x110000}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Format(tc.res)
			require.Error(t, err)
		})
	}
}

// tagged is a Resource whose dynamic type cannot be compared with ==.
type tagged []string

func (tagged) Kind() string { return "tagged" }

func TestEqual(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(nil, Theme{Path: "a"}))
	assert.True(t, Equal(Theme{Path: "a"}, Theme{Path: "a"}))
	assert.False(t, Equal(Theme{Path: "a"}, File{Path: "a"}))

	assert.True(t, Equal(tagged{"a"}, tagged{"a"}))
	assert.False(t, Equal(tagged{"a"}, tagged{"b"}))
	assert.False(t, Equal(tagged{"a"}, Theme{Path: "a"}))
}
