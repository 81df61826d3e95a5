package design

import (
	"errors"
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/designfmt/internal/resource"
	"github.com/vk/designfmt/internal/shortcut"
)

func newTestFormatter() *Formatter {
	return New(WithLocation(time.FixedZone("EET", 2*60*60)))
}

func TestCanConvert(t *testing.T) {
	f := newTestFormatter()

	for _, typ := range []reflect.Type{
		TypeOf[bool](), TypeOf[Char](), TypeOf[int8](), TypeOf[int16](),
		TypeOf[int32](), TypeOf[int64](), TypeOf[int](), TypeOf[float32](),
		TypeOf[float64](), TypeOf[*big.Float](), TypeOf[string](),
		TypeOf[*shortcut.Action](), TypeOf[time.Time](), TypeOf[*time.Location](),
		TypeOf[resource.Resource](), TypeOf[resource.External](),
		TypeOf[resource.Theme](), TypeOf[resource.File](), TypeOf[resource.FontIcon](),
	} {
		assert.True(t, f.CanConvert(typ), "not supported %s", typ)
	}

	for _, typ := range []reflect.Type{
		TypeOf[uint8](), TypeOf[*int](), TypeOf[struct{}](), TypeOf[shortcut.Action](),
		TypeOf[*resource.External](), TypeOf[error](), nil,
	} {
		assert.False(t, f.CanConvert(typ), "unexpectedly supported %v", typ)
	}

	assert.Len(t, f.Types(), 19)
}

func TestBoolean(t *testing.T) {
	f := newTestFormatter()

	formatted, err := f.Format(true)
	require.NoError(t, err)
	assert.Equal(t, "true", formatted)

	formatted, err = f.Format(false)
	require.NoError(t, err)
	assert.Equal(t, "false", formatted)

	testCases := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"foobar", true},
		{"", true},
		{"False", true},
		{"false", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			v, err := ParseAs[bool](f, tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestIntegral(t *testing.T) {
	f := newTestFormatter()

	testCases := []struct {
		name  string
		value any
		text  string
	}{
		{"byte", int8(123), "123"},
		{"negative byte", int8(-123), "-123"},
		{"short", int16(12345), "12345"},
		{"negative short", int16(-12345), "-12345"},
		{"int", int32(123456789), "123456789"},
		{"negative int", int32(-123456789), "-123456789"},
		{"native int", 42, "42"},
		{"long", int64(123456789123456789), "123456789123456789"},
		{"negative long", int64(-123456789123456789), "-123456789123456789"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatted, err := f.Format(tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.text, formatted)

			parsed, err := f.Parse(tc.text, reflect.TypeOf(tc.value))
			require.NoError(t, err)
			assert.Equal(t, tc.value, parsed)
		})
	}
}

func TestIntegral_Overflow(t *testing.T) {
	f := newTestFormatter()

	for _, tc := range []struct {
		text string
		typ  reflect.Type
	}{
		{"128", TypeOf[int8]()},
		{"-129", TypeOf[int8]()},
		{"32768", TypeOf[int16]()},
		{"2147483648", TypeOf[int32]()},
		{"9223372036854775808", TypeOf[int64]()},
		{"12.5", TypeOf[int32]()},
		{"", TypeOf[int64]()},
		{"1,000", TypeOf[int64]()},
	} {
		t.Run(tc.typ.String()+"/"+tc.text, func(t *testing.T) {
			_, err := f.Parse(tc.text, tc.typ)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConversion)
		})
	}
}

func TestFloatingPoint(t *testing.T) {
	f := newTestFormatter()

	fl := float32(123.4567)
	formatted, err := f.Format(fl)
	require.NoError(t, err)
	assert.Equal(t, "123.457", formatted)

	parsedFloat, err := ParseAs[float32](f, "123.4567")
	require.NoError(t, err)
	assert.InDelta(t, fl, parsedFloat, 1e-4)

	d := 123456789.123456789
	formatted, err = f.Format(d)
	require.NoError(t, err)
	assert.Equal(t, "123456789.123", formatted)

	parsedDouble, err := ParseAs[float64](f, "123456789.123456789")
	require.NoError(t, err)
	assert.InDelta(t, d, parsedDouble, 1e-9)

	for _, tc := range []struct {
		value any
		text  string
	}{
		{1.5, "1.5"},
		{2.0, "2"},
		{-0.25, "-0.25"},
		{float32(0.0004), "0"},
		{1234567.0, "1234567"},
	} {
		formatted, err := f.Format(tc.value)
		require.NoError(t, err)
		assert.Equal(t, tc.text, formatted)
	}

	_, err = ParseAs[float64](f, "abc")
	require.ErrorIs(t, err, ErrConversion)
}

func TestBigDecimal(t *testing.T) {
	f := newTestFormatter()
	const literal = "123456789123456789.123456789123456789"

	bd, _, err := big.ParseFloat(literal, 10, 512, big.ToNearestEven)
	require.NoError(t, err)

	formatted, err := f.Format(bd)
	require.NoError(t, err)
	assert.Equal(t, "123456789123456789.123", formatted)

	parsed, err := ParseAs[*big.Float](f, literal)
	require.NoError(t, err)
	assert.Zero(t, bd.Cmp(parsed), "parsed %s", parsed.Text('g', 40))

	_, err = ParseAs[*big.Float](f, "twelve")
	require.ErrorIs(t, err, ErrConversion)

	_, err = f.Format((*big.Float)(nil))
	require.ErrorIs(t, err, ErrConversion)
}

func TestChar(t *testing.T) {
	f := newTestFormatter()

	c := Char('\uABCD')
	formatted, err := f.Format(c)
	require.NoError(t, err)
	assert.Equal(t, "\uABCD", formatted)

	parsed, err := ParseAs[Char](f, "\uABCD")
	require.NoError(t, err)
	assert.Equal(t, c, parsed)

	parsed, err = ParseAs[Char](f, "yes")
	require.NoError(t, err)
	assert.Equal(t, Char('y'), parsed)

	_, err = ParseAs[Char](f, "")
	require.ErrorIs(t, err, ErrConversion)

	_, err = ParseAs[Char](f, "\xff")
	require.ErrorIs(t, err, ErrConversion)
}

func TestString(t *testing.T) {
	f := newTestFormatter()

	for _, s := range []string{"", "foobar", "\uABCD", "驯鹿"} {
		formatted, err := f.Format(s)
		require.NoError(t, err)
		assert.Equal(t, s, formatted)

		parsed, err := ParseAs[string](f, s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestDate(t *testing.T) {
	f := newTestFormatter()
	date := time.Date(2012, time.February, 17, 0, 0, 0, 0, f.Location())

	formatted, err := f.Format(date)
	require.NoError(t, err)
	// writing always gives the full date string
	assert.Equal(t, "2012-02-17 00:00:00+0200", formatted)

	result, err := ParseAs[time.Time](f, formatted)
	require.NoError(t, err)
	assert.True(t, date.Equal(result), "got %s", result)

	result, err = ParseAs[time.Time](f, "2012-02-17")
	require.NoError(t, err)
	assert.True(t, date.Equal(result), "got %s", result)

	// other offsets are converted into the formatter's zone
	result, err = ParseAs[time.Time](f, "2012-02-16 22:00:00+0000")
	require.NoError(t, err)
	assert.True(t, date.Equal(result), "got %s", result)

	for _, bad := range []string{"", "17.02.2012", "2012-02-17T00:00:00Z", "2012-02-30"} {
		_, err := ParseAs[time.Time](f, bad)
		require.ErrorIs(t, err, ErrConversion, bad)
	}
}

func TestDate_DropsSubSecondPrecision(t *testing.T) {
	f := newTestFormatter()
	date := time.Date(2012, time.February, 17, 13, 14, 15, 999, f.Location())

	formatted, err := f.Format(date)
	require.NoError(t, err)
	assert.Equal(t, "2012-02-17 13:14:15+0200", formatted)

	result, err := ParseAs[time.Time](f, formatted)
	require.NoError(t, err)
	assert.True(t, date.Truncate(time.Second).Equal(result))
}

func TestTimeZone(t *testing.T) {
	f := newTestFormatter()

	zone, err := ParseAs[*time.Location](f, "GMT+2")
	require.NoError(t, err)

	formatted, err := f.Format(zone)
	require.NoError(t, err)
	assert.Equal(t, "GMT+02:00", formatted)

	for _, input := range []string{formatted, "GMT+2", "GMT+02", "GMT+0200"} {
		result, err := ParseAs[*time.Location](f, input)
		require.NoError(t, err, input)
		assertSameZone(t, zone, result)
	}
}

func TestTimeZone_Format(t *testing.T) {
	f := newTestFormatter()
	helsinki, err := time.LoadLocation("Europe/Helsinki")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		zone     *time.Location
		expected string
	}{
		{"negative offset", time.FixedZone("GMT-5", -5*60*60), "GMT-05:00"},
		{"half hour offset", time.FixedZone("x", 5*60*60+30*60), "GMT+05:30"},
		{"unnamed zone falls back to offset", time.FixedZone("CEST", 2*60*60), "GMT+02:00"},
		{"named zone", helsinki, "Europe/Helsinki"},
		{"utc", time.UTC, "UTC"},
		{"empty name", time.FixedZone("", 2*60*60), "GMT+02:00"},
		{"utc name with offset", time.FixedZone("UTC", 2*60*60), "GMT+02:00"},
		{"known name with other offset", time.FixedZone("EST", 60*60), "GMT+01:00"},
		{"gmt name with other offset", time.FixedZone("GMT+01:00", 3*60*60), "GMT+03:00"},
		{"fixed zone with daylight saving name", time.FixedZone("EET", 2*60*60), "GMT+02:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			formatted, err := f.Format(tc.zone)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, formatted)

			parsed, err := ParseAs[*time.Location](f, formatted)
			require.NoError(t, err)
			assertSameZone(t, tc.zone, parsed)
		})
	}
}

func TestTimeZone_Invalid(t *testing.T) {
	f := newTestFormatter()

	for _, input := range []string{"", "Mars/Olympus_Mons", "GMT+24", "GMT+01:60", "gmt+2"} {
		_, err := ParseAs[*time.Location](f, input)
		require.ErrorIs(t, err, ErrConversion, input)
	}
}

func assertSameZone(t *testing.T, expected, actual *time.Location) {
	t.Helper()
	ref := time.Date(2012, time.February, 17, 0, 0, 0, 0, time.UTC)
	_, expectedOffset := ref.In(expected).Zone()
	_, actualOffset := ref.In(actual).Zone()
	assert.Equal(t, expectedOffset, actualOffset)
}

func TestShortcutActions(t *testing.T) {
	f := newTestFormatter()

	action := shortcut.FromShorthand("&^d")
	formatted, err := f.Format(action)
	require.NoError(t, err)
	// the space separates the key combination from the caption
	assert.Equal(t, "alt-ctrl-d d", formatted)

	result, err := ParseAs[*shortcut.Action](f, formatted)
	require.NoError(t, err)
	assert.True(t, action.Equal(result))
}

func TestShortcutActionNoCaption(t *testing.T) {
	f := newTestFormatter()

	action := shortcut.New("", shortcut.KeyD, shortcut.Alt, shortcut.Ctrl)
	formatted, err := f.Format(action)
	require.NoError(t, err)
	assert.Equal(t, "alt-ctrl-d", formatted)

	result, err := ParseAs[*shortcut.Action](f, formatted)
	require.NoError(t, err)
	assert.True(t, action.Equal(result))
}

func TestInvalidShortcutAction(t *testing.T) {
	f := newTestFormatter()

	for _, s := range []string{"-", "foo", "atl-ctrl", "-a"} {
		t.Run(s, func(t *testing.T) {
			v, err := ParseAs[*shortcut.Action](f, s)
			require.Error(t, err)
			assert.Nil(t, v)

			var convErr *ConversionError
			require.ErrorAs(t, err, &convErr)
			assert.Equal(t, s, convErr.Value)
			assert.Equal(t, "parse", convErr.Op)
		})
	}
}

func TestExternalResource(t *testing.T) {
	f := newTestFormatter()
	const url = "://example.com/my%20icon.png?a=b"

	for _, scheme := range []string{"http", "https", "ftp", "ftps"} {
		t.Run(scheme, func(t *testing.T) {
			res, err := ParseAs[resource.Resource](f, scheme+url)
			require.NoError(t, err)

			external, ok := res.(resource.External)
			require.True(t, ok, "%s url should be parsed as External, got %T", scheme, res)
			assert.Equal(t, scheme+url, external.URL)

			formatted, err := f.Format(resource.External{URL: scheme + url})
			require.NoError(t, err)
			assert.Equal(t, scheme+url, formatted)
		})
	}
}

func TestResourceVariants(t *testing.T) {
	f := newTestFormatter()

	theme, err := ParseAs[resource.Theme](f, "theme://img/logo.png")
	require.NoError(t, err)
	assert.Equal(t, resource.Theme{Path: "img/logo.png"}, theme)

	formatted, err := f.Format(theme)
	require.NoError(t, err)
	assert.Equal(t, "theme://img/logo.png", formatted)

	file, err := ParseAs[resource.File](f, "img/logo.png")
	require.NoError(t, err)
	assert.Equal(t, resource.File{Path: "img/logo.png"}, file)

	icon, err := ParseAs[resource.FontIcon](f, "fonticon://FontAwesome/f0c0")
	require.NoError(t, err)
	assert.Equal(t, resource.FontIcon{Family: "FontAwesome", Codepoint: 0xf0c0}, icon)

	_, err = ParseAs[resource.External](f, "theme://img/logo.png")
	require.ErrorIs(t, err, ErrConversion)
	var kindErr *resource.KindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "external", kindErr.Want)
	assert.Equal(t, "theme", kindErr.Got)

	_, err = ParseAs[resource.Resource](f, "gopher://example.com/")
	require.ErrorIs(t, err, ErrConversion)
}

func TestUnsupportedType(t *testing.T) {
	f := newTestFormatter()

	_, err := f.Format(uint(7))
	require.ErrorIs(t, err, ErrUnsupportedType)
	require.ErrorIs(t, err, ErrConversion)

	_, err = f.Format(nil)
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = f.Parse("7", TypeOf[uint]())
	require.ErrorIs(t, err, ErrUnsupportedType)

	_, err = ParseAs[complex128](f, "1+2i")
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), "complex128")
}

type celsius float64

func TestAddConverter(t *testing.T) {
	f := newTestFormatter()
	require.False(t, f.CanConvert(TypeOf[celsius]()))

	conv := Typed[celsius]{
		FormatFunc: func(c celsius) (string, error) {
			return f.Format(float64(c))
		},
		ParseFunc: func(s string) (celsius, error) {
			v, err := ParseAs[float64](f, s)
			return celsius(v), err
		},
	}
	require.NoError(t, Register[celsius](f, conv))
	require.True(t, f.CanConvert(TypeOf[celsius]()))

	formatted, err := f.Format(celsius(21.5))
	require.NoError(t, err)
	assert.Equal(t, "21.5", formatted)

	parsed, err := ParseAs[celsius](f, "21.5")
	require.NoError(t, err)
	assert.Equal(t, celsius(21.5), parsed)

	require.Error(t, f.AddConverter(nil, conv))
	require.Error(t, f.AddConverter(TypeOf[celsius](), nil))
}

func TestAddConverter_Replaces(t *testing.T) {
	f := newTestFormatter()

	yesNo := Typed[bool]{
		FormatFunc: func(v bool) (string, error) {
			if v {
				return "yes", nil
			}
			return "no", nil
		},
		ParseFunc: func(s string) (bool, error) {
			switch s {
			case "yes":
				return true, nil
			case "no":
				return false, nil
			}
			return false, errors.New("expected yes or no")
		},
	}
	require.NoError(t, Register[bool](f, yesNo))

	formatted, err := f.Format(true)
	require.NoError(t, err)
	assert.Equal(t, "yes", formatted)

	_, err = ParseAs[bool](f, "foobar")
	require.ErrorIs(t, err, ErrConversion)
	assert.Len(t, f.Types(), 19)
}

func TestTyped_WrongValueType(t *testing.T) {
	_, err := boolConverter.Format("true")
	require.Error(t, err)
}
