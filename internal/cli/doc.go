// Package cli implements the designfmt command tree on top of package app.
package cli
