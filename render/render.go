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

// Package render draws line- and character-level differences between two
// documents for terminals, either as a unified listing or side by side.
//
// Replaced blocks are aligned line by line using [jiff.dev/jiff/align] so
// that character-level highlighting marks the parts of a line that actually
// changed instead of arbitrary cross-line noise.
package render

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"jiff.dev/jiff"
	"jiff.dev/jiff/align"
	"jiff.dev/jiff/internal/config"
	"jiff.dev/jiff/internal/wrap"
)

const defaultWidth = 120

const separator = "│"

// Unified writes the differences between x and y to w as a single listing
// with "  ", "+ " and "- " margins. For replaced blocks, the removed lines
// are written first and the added lines after, with the characters that
// changed between paired lines highlighted.
//
// The following option is supported: [Color]
func Unified(w io.Writer, x, y string, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Color)
	st := unifiedStyles(cfg.Color)

	var buf bytes.Buffer
	for _, change := range jiff.Lines(x, y) {
		logrus.Debugf("change: %v %q -> %q", change.Kind, change.Left, change.Right)
		switch change.Kind {
		case jiff.Same:
			for _, line := range strings.Split(change.Left, "\n") {
				buf.WriteString("  ")
				buf.WriteString(st.same.apply(line))
				buf.WriteByte('\n')
			}
		case jiff.Add:
			for _, line := range strings.Split(change.Right, "\n") {
				buf.WriteString("+ ")
				buf.WriteString(st.add.apply(line))
				buf.WriteByte('\n')
			}
		case jiff.Remove:
			for _, line := range strings.Split(change.Left, "\n") {
				buf.WriteString("- ")
				buf.WriteString(st.remove.apply(line))
				buf.WriteByte('\n')
			}
		case jiff.Replace:
			if err := unifiedReplace(&buf, change, st); err != nil {
				return err
			}
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// unifiedReplace renders one replaced block: all before-lines, then all
// after-lines, in alignment order. Unpaired lines are highlighted whole,
// paired lines character by character.
func unifiedReplace(buf *bytes.Buffer, change jiff.Change, st styles) error {
	pairs, err := align.Pairs(
		strings.Split(change.Left, "\n"),
		strings.Split(change.Right, "\n"),
	)
	if err != nil {
		return fmt.Errorf("aligning replace block: %v", err)
	}

	var before, after bytes.Buffer
	for _, p := range pairs {
		logrus.Debugf("aligned: %v %q -> %q", p.Op, p.Before, p.After)
		switch p.Op {
		case align.Delete:
			before.WriteString("- ")
			before.WriteString(st.removeHighlight.apply(p.Before))
			before.WriteByte('\n')
		case align.Insert:
			after.WriteString("+ ")
			after.WriteString(st.addHighlight.apply(p.After))
			after.WriteByte('\n')
		case align.Substitute:
			bspans, aspans := charSpans(p.Before, p.After, st)
			before.WriteString("- ")
			writeSpans(&before, bspans)
			before.WriteByte('\n')
			after.WriteString("+ ")
			writeSpans(&after, aspans)
			after.WriteByte('\n')
		}
	}
	buf.Write(before.Bytes())
	buf.Write(after.Bytes())
	return nil
}

// SideBySide writes the differences between x and y to w in two columns
// with right-aligned line numbers. Long lines wrap to the column width,
// continuation rows carry a blank number margin.
//
// The following options are supported: [Color], [Width], [TabSize]
func SideBySide(w io.Writer, x, y string, opts ...Option) error {
	cfg := config.FromOptions(opts, config.Color|config.Width|config.TabSize)

	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	maxLineCount := max(strings.Count(x, "\n"), strings.Count(y, "\n"))
	linenoWidth := 1
	if maxLineCount > 0 {
		linenoWidth = int(math.Log10(float64(maxLineCount))) + 1
	}

	s := &sideBySide{
		lineWidth:   max(1, (width-1)/2-(linenoWidth+2)),
		linenoWidth: linenoWidth,
		tabSize:     cfg.TabSize,
		lineno:      sideBySideNumberStyles(cfg.Color),
		line:        sideBySideLineStyles(cfg.Color),
		l:           1,
		r:           1,
	}

	for _, change := range jiff.Lines(x, y) {
		logrus.Debugf("change: %v %q -> %q", change.Kind, change.Left, change.Right)
		switch change.Kind {
		case jiff.Same:
			for _, line := range strings.Split(change.Left, "\n") {
				s.sameRow(line)
			}
		case jiff.Add:
			for _, line := range strings.Split(change.Right, "\n") {
				s.addRow(line)
			}
		case jiff.Remove:
			for _, line := range strings.Split(change.Left, "\n") {
				s.removeRow(line)
			}
		case jiff.Replace:
			pairs, err := align.Pairs(
				strings.Split(change.Left, "\n"),
				strings.Split(change.Right, "\n"),
			)
			if err != nil {
				return fmt.Errorf("aligning replace block: %v", err)
			}
			for _, p := range pairs {
				logrus.Debugf("aligned: %v %q -> %q", p.Op, p.Before, p.After)
				switch p.Op {
				case align.Delete:
					s.removeRow(p.Before)
				case align.Insert:
					s.addRow(p.After)
				case align.Substitute:
					s.substituteRow(p.Before, p.After)
				}
			}
		}
	}
	_, err := w.Write(s.buf.Bytes())
	return err
}

type sideBySide struct {
	buf         bytes.Buffer
	lineWidth   int // columns available for line content per side
	linenoWidth int // digits in the widest line number
	tabSize     int
	lineno      styles
	line        styles
	l, r        int // next line number per side
}

// lno formats a line number margin, right-aligned with a trailing colon.
func (s *sideBySide) lno(n int, st style) string {
	return st.apply(fmt.Sprintf("%*d:", s.linenoWidth, n))
}

// blankNo is the margin for rows without a line number: the continuation
// rows of a wrapped line and the empty side of an add or remove.
func (s *sideBySide) blankNo(st style) string {
	return st.apply(strings.Repeat(" ", s.linenoWidth+1))
}

func (s *sideBySide) sameRow(line string) {
	sp := []wrap.Span{{Text: line, Style: string(s.line.same)}}
	s.row(s.lno(s.l, s.lineno.same), s.lno(s.r, s.lineno.same),
		s.blankNo(s.lineno.same), s.blankNo(s.lineno.same), sp, sp)
	s.l++
	s.r++
}

func (s *sideBySide) addRow(line string) {
	right := []wrap.Span{{Text: line, Style: string(s.line.addHighlight)}}
	s.row(s.blankNo(s.lineno.same), s.lno(s.r, s.lineno.addHighlight),
		s.blankNo(s.lineno.same), s.blankNo(s.lineno.addHighlight), nil, right)
	s.r++
}

func (s *sideBySide) removeRow(line string) {
	left := []wrap.Span{{Text: line, Style: string(s.line.removeHighlight)}}
	s.row(s.lno(s.l, s.lineno.removeHighlight), s.blankNo(s.lineno.same),
		s.blankNo(s.lineno.removeHighlight), s.blankNo(s.lineno.same), left, nil)
	s.l++
}

func (s *sideBySide) substituteRow(before, after string) {
	bspans, aspans := charSpans(before, after, s.line)
	s.row(s.lno(s.l, s.lineno.remove), s.lno(s.r, s.lineno.add),
		s.blankNo(s.lineno.remove), s.blankNo(s.lineno.add), bspans, aspans)
	s.l++
	s.r++
}

// row writes one logical row pair, wrapping both sides to the column width
// and padding the left column up to the separator. The shorter side is
// padded with empty rows.
func (s *sideBySide) row(numL, numR, wrapL, wrapR string, left, right []wrap.Span) {
	lrows := wrap.Rows(left, s.lineWidth, s.tabSize)
	rrows := wrap.Rows(right, s.lineWidth, s.tabSize)
	for i := 0; i < len(lrows) || i < len(rrows); i++ {
		var lrow, rrow []wrap.Span
		if i < len(lrows) {
			lrow = lrows[i]
		}
		if i < len(rrows) {
			rrow = rrows[i]
		}
		ml, mr := numL, numR
		if i > 0 {
			ml, mr = wrapL, wrapR
		}
		s.buf.WriteString(ml)
		s.buf.WriteByte(' ')
		writeSpans(&s.buf, lrow)
		if pad := s.lineWidth - wrap.RowWidth(lrow); pad > 0 {
			s.buf.WriteString(strings.Repeat(" ", pad))
		}
		s.buf.WriteString(separator)
		s.buf.WriteString(mr)
		s.buf.WriteByte(' ')
		writeSpans(&s.buf, rrow)
		s.buf.WriteByte('\n')
	}
}

// charSpans renders the character-level difference between two paired
// lines: characters present on both sides keep the side's base color,
// characters unique to one side get the highlight color.
func charSpans(before, after string, st styles) (b, a []wrap.Span) {
	for _, c := range jiff.Chars(before, after) {
		switch c.Kind {
		case jiff.Same:
			b = append(b, wrap.Span{Text: c.Left, Style: string(st.remove)})
			a = append(a, wrap.Span{Text: c.Left, Style: string(st.add)})
		case jiff.Add:
			a = append(a, wrap.Span{Text: c.Right, Style: string(st.addHighlight)})
		case jiff.Remove:
			b = append(b, wrap.Span{Text: c.Left, Style: string(st.removeHighlight)})
		case jiff.Replace:
			b = append(b, wrap.Span{Text: c.Left, Style: string(st.removeHighlight)})
			a = append(a, wrap.Span{Text: c.Right, Style: string(st.addHighlight)})
		}
	}
	return b, a
}

func writeSpans(buf *bytes.Buffer, spans []wrap.Span) {
	for _, sp := range spans {
		buf.WriteString(style(sp.Style).apply(sp.Text))
	}
}
