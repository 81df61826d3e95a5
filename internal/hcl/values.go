package hcl

import (
	"context"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/designfmt/internal/ctxlog"
	"github.com/vk/designfmt/internal/design"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// evaluate turns a body of plain attributes into values.
func evaluate(ctx context.Context, body hcl.Body, filename string) (map[string]cty.Value, error) {
	logger := ctxlog.FromContext(ctx)

	attributes, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read attributes from %s: %w", filename, diags)
	}

	values := make(map[string]cty.Value, len(attributes))
	for name, attr := range attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute '%s': %w", name, diags)
		}
		values[name] = val
	}

	logger.Debug("Evaluated HCL attributes.", "file", filename, "count", len(values))
	return values, nil
}

// FormatValue writes a primitive cty value as an attribute string. Whole
// numbers that fit in an int64 are written as integers; other numbers keep
// their full precision up to the formatter's fraction digits.
func FormatValue(f *design.Formatter, val cty.Value) (string, error) {
	if val.IsNull() || !val.IsWhollyKnown() {
		return "", fmt.Errorf("cannot format a null or unknown value")
	}

	switch ty := val.Type(); {
	case ty.Equals(cty.Bool):
		return f.Format(val.True())

	case ty.Equals(cty.Number):
		bf := val.AsBigFloat()
		if bf.IsInt() {
			var n int64
			if err := gocty.FromCtyValue(val, &n); err == nil {
				return f.Format(n)
			}
		}
		return f.Format(bf)

	case ty.Equals(cty.String):
		return f.Format(val.AsString())

	default:
		return "", fmt.Errorf("cannot format value of type %s as an attribute", ty.FriendlyName())
	}
}

// ParseValue reads an attribute string into a value of the given primitive
// type. cty.DynamicPseudoType yields a string.
func ParseValue(f *design.Formatter, s string, ty cty.Type) (cty.Value, error) {
	var val cty.Value

	switch {
	case ty.Equals(cty.Bool):
		b, err := design.ParseAs[bool](f, s)
		if err != nil {
			return cty.NilVal, err
		}
		val = cty.BoolVal(b)

	case ty.Equals(cty.Number):
		bf, err := design.ParseAs[*big.Float](f, s)
		if err != nil {
			return cty.NilVal, err
		}
		val = cty.NumberVal(bf)

	case ty.Equals(cty.String), ty.Equals(cty.DynamicPseudoType):
		str, err := design.ParseAs[string](f, s)
		if err != nil {
			return cty.NilVal, err
		}
		val = cty.StringVal(str)

	default:
		return cty.NilVal, fmt.Errorf("cannot parse an attribute into type %s", ty.FriendlyName())
	}

	if ty.Equals(cty.DynamicPseudoType) {
		return val, nil
	}
	return convert.Convert(val, ty)
}

// ToAttributes formats every value of an attribute map.
func ToAttributes(ctx context.Context, f *design.Formatter, values map[string]cty.Value) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	out := make(map[string]string, len(values))
	for name, val := range values {
		s, err := FormatValue(f, val)
		if err != nil {
			return nil, fmt.Errorf("in attribute '%s': %w", name, err)
		}
		logger.Debug("Formatted attribute.", "attribute", name, "source_type", val.Type().FriendlyName())
		out[name] = s
	}
	return out, nil
}
