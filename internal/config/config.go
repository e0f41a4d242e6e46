// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// seqdiff.Option.
package config

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// If set, only elements without any match in the other sequence are discarded before running
	// the comparator. This guarantees a shortest edit script.
	Minimal bool

	// If set, the boundary shift pass is applied to the comparator output.
	Shift bool

	// If set, textdiff ignores all white space when comparing lines.
	IgnoreWhitespace bool

	// If set, textdiff ignores case differences when comparing lines.
	IgnoreCase bool
}

// Default is the default configuration.
var Default = Config{
	Minimal:          false,
	Shift:            true,
	IgnoreWhitespace: false,
	IgnoreCase:       false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	Minimal Flag = 1 << iota
	NoShift
	IgnoreWhitespace
	IgnoreCase
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		if opt == nil {
			panic("nil option")
		}
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Minimal:
		return "seqdiff.Minimal"
	case NoShift:
		return "seqdiff.NoShift"
	case IgnoreWhitespace:
		return "textdiff.IgnoreWhitespace"
	case IgnoreCase:
		return "textdiff.IgnoreCase"
	default:
		panic("never reached")
	}
}
