package design

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the layout dates are written in: yyyy-MM-dd HH:mm:ssZ.
	DateLayout = "2006-01-02 15:04:05-0700"
	// ShortDateLayout is also accepted on parse, meaning midnight in the
	// formatter's location.
	ShortDateLayout = "2006-01-02"
)

func dateConverter(loc *time.Location) Typed[time.Time] {
	return Typed[time.Time]{
		FormatFunc: func(v time.Time) (string, error) {
			return v.In(loc).Format(DateLayout), nil
		},
		ParseFunc: func(s string) (time.Time, error) {
			if t, err := time.Parse(DateLayout, s); err == nil {
				return t.In(loc), nil
			}
			if t, err := time.ParseInLocation(ShortDateLayout, s, loc); err == nil {
				return t, nil
			}
			return time.Time{}, fmt.Errorf("expected a date as %q or %q", "yyyy-MM-dd HH:mm:ssZ", "yyyy-MM-dd")
		},
	}
}
