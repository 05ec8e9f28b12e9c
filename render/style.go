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

import (
	"fmt"
	"strings"
)

// Styling uses [Select Graphic Rendition parameters] formatted once into an
// escape prefix. The empty style leaves text untouched, which is how the
// no-color mode works.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
type style string

const reset = "\033[0m"

func sgr(params ...int) style {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return style(sb.String())
}

func (st style) apply(s string) string {
	if st == "" || s == "" {
		return s
	}
	return string(st) + s + reset
}

// styles groups the style variants for one rendering concern (line content
// or line number margins).
type styles struct {
	same, add, addHighlight, remove, removeHighlight style
}

// unifiedStyles colors unified output: plain green and red for added and
// removed lines, block colors for the characters that actually changed
// within a paired line. Margins stay unstyled.
func unifiedStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		add:             sgr(32),
		addHighlight:    sgr(30, 42),
		remove:          sgr(31),
		removeHighlight: sgr(30, 41),
	}
}

// sideBySideNumberStyles colors the line number margins: bold, with the
// side's base color.
func sideBySideNumberStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		same:            sgr(1, 30),
		add:             sgr(1, 32),
		addHighlight:    sgr(1, 32),
		remove:          sgr(1, 31),
		removeHighlight: sgr(1, 31),
	}
}

// sideBySideLineStyles colors line content: 256-color pastel green and red,
// with reverse video for highlighted characters and whole unpaired lines.
func sideBySideLineStyles(color bool) styles {
	if !color {
		return styles{}
	}
	return styles{
		same:            sgr(30),
		add:             sgr(38, 5, 157),
		addHighlight:    sgr(7, 38, 5, 157),
		remove:          sgr(38, 5, 217),
		removeHighlight: sgr(7, 38, 5, 217),
	}
}
