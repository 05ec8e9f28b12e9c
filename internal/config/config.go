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

// Package config provides shared configuration mechanisms for packages in
// this module.
//
// This package is an implementation detail, the configuration surface for
// users is provided via render.Option.
package config

// Config collects all configurable parameters for the render functions.
type Config struct {
	// Color enables ANSI styling of the output.
	Color bool

	// Width is the number of terminal columns available for side-by-side
	// rendering. Zero selects the default of 120 columns.
	Width int

	// TabSize is the number of columns between tab stops.
	TabSize int
}

// Default is the default configuration.
var Default = Config{
	Color:   true,
	Width:   0,
	TabSize: 4,
}

// Flag describes a single config entry. This is used to detect options being
// passed to functions that don't support them.
type Flag int

const (
	Color Flag = 1 << iota
	Width
	TabSize
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Color:
		return "render.Color"
	case Width:
		return "render.Width"
	case TabSize:
		return "render.TabSize"
	default:
		panic("never reached")
	}
}
