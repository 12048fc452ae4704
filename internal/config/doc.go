// Package config implements the configuration grammar from spec.md
// §4.3: the line-oriented map/button/set grammar read from ~/.gitrsrc
// at startup and from the ":"-command line at runtime (spec.md §6).
package config
