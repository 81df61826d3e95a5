// Package config defines the configuration model of the designfmt tool and
// loads it from an HCL file.
//
// A configuration file looks like:
//
//	formatter {
//	  time_zone = "GMT+2"
//	}
//
//	log {
//	  level  = "debug"
//	  format = "text"
//	}
//
// Every block and attribute is optional.
package config
