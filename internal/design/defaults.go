package design

import (
	"math/big"
	"strconv"
	"time"

	"github.com/vk/designfmt/internal/resource"
	"github.com/vk/designfmt/internal/shortcut"
)

// registerDefaults installs the built-in converters. Registration of a
// non-nil type and converter cannot fail, so errors are not checked.
func (f *Formatter) registerDefaults() {
	_ = Register[bool](f, boolConverter)

	_ = Register[int8](f, intConverter[int8](8))
	_ = Register[int16](f, intConverter[int16](16))
	_ = Register[int32](f, intConverter[int32](32))
	_ = Register[int64](f, intConverter[int64](64))
	_ = Register[int](f, intConverter[int](strconv.IntSize))

	_ = Register[float32](f, floatConverter[float32](32))
	_ = Register[float64](f, floatConverter[float64](64))
	_ = Register[*big.Float](f, bigFloatConverter)

	_ = Register[Char](f, charConverter)
	_ = Register[string](f, stringConverter)

	_ = Register[time.Time](f, dateConverter(f.location))
	_ = Register[*time.Location](f, timeZoneConverter)

	_ = Register[*shortcut.Action](f, shortcutConverter)

	_ = Register[resource.Resource](f, resourceConverter)
	_ = Register[resource.External](f, resourceVariant[resource.External]())
	_ = Register[resource.Theme](f, resourceVariant[resource.Theme]())
	_ = Register[resource.File](f, resourceVariant[resource.File]())
	_ = Register[resource.FontIcon](f, resourceVariant[resource.FontIcon]())
}
