package app

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"time"

	"github.com/samber/lo"
	"github.com/vk/designfmt/internal/design"
	"github.com/vk/designfmt/internal/resource"
	"github.com/vk/designfmt/internal/shortcut"
)

// typeNames maps the names accepted by --type to registry keys.
var typeNames = map[string]reflect.Type{
	"bool":       design.TypeOf[bool](),
	"byte":       design.TypeOf[int8](),
	"short":      design.TypeOf[int16](),
	"int":        design.TypeOf[int32](),
	"long":       design.TypeOf[int64](),
	"float":      design.TypeOf[float32](),
	"double":     design.TypeOf[float64](),
	"bigdecimal": design.TypeOf[*big.Float](),
	"char":       design.TypeOf[design.Char](),
	"string":     design.TypeOf[string](),
	"date":       design.TypeOf[time.Time](),
	"timezone":   design.TypeOf[*time.Location](),
	"shortcut":   design.TypeOf[*shortcut.Action](),
	"resource":   design.TypeOf[resource.Resource](),
}

// TypeNames returns the names accepted by LookupType, sorted.
func TypeNames() []string {
	names := lo.Keys(typeNames)
	slices.Sort(names)
	return names
}

// LookupType resolves a type name.
func LookupType(name string) (reflect.Type, error) {
	t, ok := typeNames[name]
	if !ok {
		return nil, fmt.Errorf("unknown type %q, expected one of %v", name, TypeNames())
	}
	return t, nil
}
