package design

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	// Resolving zone names must not depend on the host's zoneinfo files.
	_ "time/tzdata"
)

// gmtOffsetRegex matches custom zone ids such as GMT+2, GMT-0530 or GMT+02:00.
var gmtOffsetRegex = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::?(\d{2}))?$`)

var timeZoneConverter = Typed[*time.Location]{
	FormatFunc: formatTimeZone,
	ParseFunc:  parseTimeZone,
}

// parseTimeZone resolves GMT offsets to fixed zones and everything else
// through the zone database. Unknown ids are an error, never UTC.
func parseTimeZone(s string) (*time.Location, error) {
	if s == "" {
		return nil, errors.New("time zone id cannot be empty")
	}
	if s == "GMT" {
		return time.FixedZone("GMT", 0), nil
	}
	if gmtOffsetRegex.MatchString(s) {
		offset, err := parseGMTOffset(s)
		if err != nil {
			return nil, err
		}
		return time.FixedZone(gmtName(offset), offset), nil
	}

	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", s, err)
	}
	return loc, nil
}

// parseGMTOffset returns the offset in seconds east of UTC.
func parseGMTOffset(s string) (int, error) {
	matches := gmtOffsetRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid GMT offset %q", s)
	}

	hours, _ := strconv.Atoi(matches[2])
	minutes := 0
	if matches[3] != "" {
		minutes, _ = strconv.Atoi(matches[3])
	}
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("GMT offset %q out of range", s)
	}

	offset := hours*3600 + minutes*60
	if matches[1] == "-" {
		offset = -offset
	}
	return offset, nil
}

// gmtName renders an offset as GMT±HH:MM.
func gmtName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("GMT%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}

// zoneCheckInstants cover both halves of the year so daylight saving rules
// take part in the comparison.
var zoneCheckInstants = []time.Time{
	time.Date(2000, time.January, 15, 12, 0, 0, 0, time.UTC),
	time.Date(2000, time.July, 15, 12, 0, 0, 0, time.UTC),
}

// sameOffsets reports whether two locations agree at every check instant.
func sameOffsets(a, b *time.Location) bool {
	for _, instant := range zoneCheckInstants {
		_, offsetA := instant.In(a).Zone()
		_, offsetB := instant.In(b).Zone()
		if offsetA != offsetB {
			return false
		}
	}
	return true
}

func formatTimeZone(loc *time.Location) (string, error) {
	if loc == nil {
		return "", errors.New("time zone cannot be nil")
	}

	// A name is only written when it reads back as the same zone.
	name := loc.String()
	if name != "" && !gmtOffsetRegex.MatchString(name) {
		if resolved, err := parseTimeZone(name); err == nil && sameOffsets(loc, resolved) {
			return name, nil
		}
	}

	// Ad-hoc fixed zones such as time.FixedZone("CEST", 7200), or zones
	// whose name means something else, are written as their offset.
	_, offset := zoneCheckInstants[0].In(loc).Zone()
	return gmtName(offset), nil
}
