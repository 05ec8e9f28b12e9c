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

// Package wrap breaks styled text into fixed-width rows for column layout.
//
// Widths are display widths: East Asian wide runes count two columns and
// tabs advance to the next tab stop. Tabs are expanded to spaces during
// wrapping because a literal tab would land on different stops after its
// prefix moved to an earlier row.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Span is a run of text rendered with a single style. The style is opaque to
// this package and carried through unchanged.
type Span struct {
	Text  string
	Style string
}

// Width reports the display width of s with tab stops every tabsize columns.
func Width(s string, tabsize int) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabsize - w%tabsize
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

// RowWidth reports the display width of a wrapped row.
func RowWidth(row []Span) int {
	w := 0
	for _, sp := range row {
		w += runewidth.StringWidth(sp.Text)
	}
	return w
}

// Rows breaks spans into rows of at most width display columns, preserving
// styles across breaks. A rune that doesn't fit the remaining columns starts
// a new row; a rune wider than the full row width is placed anyway to
// guarantee progress. The result always contains at least one row so that
// empty input still occupies a display row.
func Rows(spans []Span, width, tabsize int) [][]Span {
	if width < 1 {
		width = 1
	}
	if tabsize < 1 {
		tabsize = 1
	}

	var rows [][]Span
	var row []Span
	var sb strings.Builder
	col := 0

	flush := func(style string) {
		if sb.Len() > 0 {
			row = append(row, Span{sb.String(), style})
			sb.Reset()
		}
	}

	for _, sp := range spans {
		for _, r := range sp.Text {
			rw := runewidth.RuneWidth(r)
			if r == '\t' {
				rw = tabsize - col%tabsize
			}
			if col+rw > width && col > 0 {
				flush(sp.Style)
				rows = append(rows, row)
				row = nil
				col = 0
				if r == '\t' {
					rw = tabsize
				}
			}
			if r == '\t' {
				sb.WriteString(strings.Repeat(" ", rw))
			} else {
				sb.WriteRune(r)
			}
			col += rw
		}
		flush(sp.Style)
	}
	rows = append(rows, row)
	return rows
}
