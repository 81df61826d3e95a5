package design

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// fractionDigits is the number of fractional digits written for
// non-integral numbers.
const fractionDigits = 3

func intConverter[T int8 | int16 | int32 | int64 | int](bitSize int) Typed[T] {
	return Typed[T]{
		FormatFunc: func(v T) (string, error) {
			return strconv.FormatInt(int64(v), 10), nil
		},
		ParseFunc: func(s string) (T, error) {
			n, err := strconv.ParseInt(s, 10, bitSize)
			if err != nil {
				return 0, err
			}
			return T(n), nil
		},
	}
}

func floatConverter[T float32 | float64](bitSize int) Typed[T] {
	return Typed[T]{
		FormatFunc: func(v T) (string, error) {
			return trimFraction(strconv.FormatFloat(float64(v), 'f', fractionDigits, bitSize)), nil
		},
		ParseFunc: func(s string) (T, error) {
			n, err := strconv.ParseFloat(s, bitSize)
			if err != nil {
				return 0, err
			}
			return T(n), nil
		},
	}
}

// bigFloatConverter keeps full precision on parse but, like the other
// non-integral converters, writes at most three fractional digits.
var bigFloatConverter = Typed[*big.Float]{
	FormatFunc: func(v *big.Float) (string, error) {
		if v == nil {
			return "", errors.New("decimal cannot be nil")
		}
		return trimFraction(v.Text('f', fractionDigits)), nil
	},
	ParseFunc: func(s string) (*big.Float, error) {
		val, err := cty.ParseNumberVal(s)
		if err != nil {
			return nil, err
		}
		return val.AsBigFloat(), nil
	},
}

// trimFraction drops trailing zeros after the decimal point, and the point
// itself when nothing follows it.
func trimFraction(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
