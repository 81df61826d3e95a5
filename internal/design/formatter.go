package design

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"
)

// Formatter is a registry of converters keyed by value type. It is safe for
// concurrent use; converters are normally registered once at startup.
type Formatter struct {
	mu         sync.RWMutex
	converters map[reflect.Type]Converter
	location   *time.Location
	logger     *slog.Logger
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLocation sets the time zone used to format dates and to interpret
// dates given without a time. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.location = loc
		}
	}
}

// WithLogger sets the logger used for registration messages.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// New creates a Formatter with all built-in converters registered.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		converters: make(map[reflect.Type]Converter),
		location:   time.Local,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.registerDefaults()
	return f
}

// Location returns the time zone used for dates.
func (f *Formatter) Location() *time.Location {
	return f.location
}

// AddConverter registers c for values of exactly type t, replacing any
// converter already registered for t.
func (f *Formatter) AddConverter(t reflect.Type, c Converter) error {
	if t == nil {
		return errors.New("converter type cannot be nil")
	}
	if c == nil {
		return fmt.Errorf("converter for %s cannot be nil", t)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.converters[t]; exists {
		f.logger.Debug("Replacing converter.", "type", t.String())
	} else {
		f.logger.Debug("Registering converter.", "type", t.String())
	}
	f.converters[t] = c
	return nil
}

// CanConvert reports whether a converter is registered for exactly t.
func (f *Formatter) CanConvert(t reflect.Type) bool {
	_, ok := f.lookup(t)
	return ok
}

// Types returns the registered types sorted by name.
func (f *Formatter) Types() []reflect.Type {
	f.mu.RLock()
	defer f.mu.RUnlock()

	types := make([]reflect.Type, 0, len(f.converters))
	for t := range f.converters {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return types
}

// Format converts v to its attribute string using the converter registered
// for v's dynamic type.
func (f *Formatter) Format(v any) (string, error) {
	t := reflect.TypeOf(v)
	c, ok := f.lookup(t)
	if !ok {
		return "", unsupported("format", t)
	}

	s, err := c.Format(v)
	if err != nil {
		return "", &ConversionError{Op: "format", Value: fmt.Sprintf("%v", v), Type: t, Err: err}
	}
	return s, nil
}

// Parse converts s to a value of type t.
func (f *Formatter) Parse(s string, t reflect.Type) (any, error) {
	c, ok := f.lookup(t)
	if !ok {
		return nil, unsupported("parse", t)
	}

	v, err := c.Parse(s)
	if err != nil {
		return nil, &ConversionError{Op: "parse", Value: s, Type: t, Err: err}
	}
	return v, nil
}

func (f *Formatter) lookup(t reflect.Type) (Converter, bool) {
	if t == nil {
		return nil, false
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.converters[t]
	return c, ok
}
