// Package format provides rules about the physical layout of source files.
package format
