package attrs

import (
	"context"
	"fmt"

	"github.com/vk/designfmt/internal/ctxlog"
	"github.com/vk/designfmt/internal/design"
)

// Encode writes the bound fields of src, a struct or pointer to one, as
// attribute strings.
func Encode(ctx context.Context, f *design.Formatter, src any) (map[string]string, error) {
	logger := ctxlog.FromContext(ctx)

	structVal, err := structValue(src, false)
	if err != nil {
		return nil, err
	}
	bound, err := fields(structVal.Type())
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(bound))
	for _, fd := range bound {
		fieldVal := structVal.Field(fd.index)
		if isNil(fieldVal) || (fd.omitEmpty && fieldVal.IsZero()) {
			logger.Debug("Skipping empty attribute.", "attribute", fd.attr)
			continue
		}

		s, err := f.Format(fieldVal.Interface())
		if err != nil {
			return nil, fmt.Errorf("failed to encode attribute '%s': %w", fd.attr, err)
		}
		out[fd.attr] = s
	}

	logger.Debug("Encoded attributes.", "type", structVal.Type().String(), "count", len(out))
	return out, nil
}

// Decode parses attribute strings into the bound fields of dst, which must
// be a pointer to a struct. Fields without a matching attribute are left
// untouched; attributes without a matching field are logged and ignored.
func Decode(ctx context.Context, f *design.Formatter, attributes map[string]string, dst any) error {
	logger := ctxlog.FromContext(ctx)

	structVal, err := structValue(dst, true)
	if err != nil {
		return err
	}
	structType := structVal.Type()
	bound, err := fields(structType)
	if err != nil {
		return err
	}

	used := make(map[string]struct{}, len(bound))
	for _, fd := range bound {
		raw, ok := attributes[fd.attr]
		if !ok {
			continue
		}
		used[fd.attr] = struct{}{}

		fieldVal := structVal.Field(fd.index)
		parsed, err := f.Parse(raw, fieldVal.Type())
		if err != nil {
			return fmt.Errorf("failed to decode attribute '%s': %w", fd.attr, err)
		}
		fieldVal.Set(assignable(parsed, fieldVal.Type()))
	}

	for name := range attributes {
		if _, ok := used[name]; !ok {
			logger.Warn("Ignoring unknown attribute.", "attribute", name, "type", structType.String())
		}
	}
	return nil
}
