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

package render

import "jiff.dev/jiff/internal/config"

// Option configures the behavior of the render functions.
type Option = config.Option

// Color toggles ANSI styling of the output. The default is on; callers
// should turn it off when the destination is not a terminal.
func Color(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Color = enabled
		return config.Color
	}
}

// Width sets the number of terminal columns available to [SideBySide].
// Zero (the default) selects 120 columns.
func Width(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(0, n)
		return config.Width
	}
}

// TabSize sets the distance between tab stops for [SideBySide]. The default
// is 4.
func TabSize(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.TabSize = max(1, n)
		return config.TabSize
	}
}
