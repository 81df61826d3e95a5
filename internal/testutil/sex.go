package testutil

import "github.com/vk/designfmt/internal/design"

// Sex is an enumerated property used to exercise custom converters.
type Sex int

const (
	Male Sex = iota
	Female
	Unknown
)

var sexNames = map[Sex]string{
	Male:    "MALE",
	Female:  "FEMALE",
	Unknown: "UNKNOWN",
}

var sexLabels = map[Sex]string{
	Male:    "Male",
	Female:  "Female",
	Unknown: "WTF?",
}

// StringRepresentation returns the human readable label of the constant.
func (s Sex) StringRepresentation() string {
	return sexLabels[s]
}

// RegisterSex adds the Sex converter to a formatter.
func RegisterSex(f *design.Formatter) error {
	return design.Register[Sex](f, design.NewEnumConverter(sexNames))
}
