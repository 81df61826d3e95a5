// Package app wires configuration, logging and the design.Formatter
// together for the designfmt command line tool.
package app
