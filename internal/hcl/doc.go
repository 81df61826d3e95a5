// Package hcl reads component attributes written as HCL and bridges
// cty values to the attribute strings produced by a design.Formatter.
//
// An attribute file is a flat list of assignments:
//
//	caption  = "Delete"
//	enabled  = true
//	width    = 120.5
//	shortcut = "shift-delete"
//
// Expressions are evaluated without variables or functions.
package hcl
