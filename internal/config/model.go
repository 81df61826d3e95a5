package config

// Model is the decoded configuration file.
type Model struct {
	Formatter *Formatter `hcl:"formatter,block"`
	Log       *Log       `hcl:"log,block"`
}

// Formatter configures the design.Formatter.
type Formatter struct {
	// TimeZone is a zone id understood by the time zone converter, e.g.
	// "GMT+2" or "Europe/Helsinki". Empty means the local zone.
	TimeZone string `hcl:"time_zone,optional"`
}

// Log configures logging.
type Log struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// TimeZone returns the configured zone id, or "" if none is set.
func (m *Model) TimeZone() string {
	if m == nil || m.Formatter == nil {
		return ""
	}
	return m.Formatter.TimeZone
}

// LogLevel returns the configured log level, or "" if none is set.
func (m *Model) LogLevel() string {
	if m == nil || m.Log == nil {
		return ""
	}
	return m.Log.Level
}

// LogFormat returns the configured log format, or "" if none is set.
func (m *Model) LogFormat() string {
	if m == nil || m.Log == nil {
		return ""
	}
	return m.Log.Format
}
