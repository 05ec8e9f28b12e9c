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

package jiff

import (
	"strings"

	"jiff.dev/jiff/internal/matcher"
)

// Kind describes a block of a diff.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Kind
type Kind int

const (
	Same    Kind = iota // The block is identical on both sides.
	Add                 // The block only exists on the right side.
	Remove              // The block only exists on the left side.
	Replace             // The block was changed between the two sides.
)

// Change describes a contiguous block of a diff.
//
//   - For Same, Left and Right contain the identical block.
//   - For Add, Right contains the added block and Left is unset.
//   - For Remove, Left contains the removed block and Right is unset.
//   - For Replace, Left and Right contain the block before and after the
//     change.
type Change struct {
	Kind        Kind
	Left, Right string
}

// Lines compares x and y line by line and returns the changes necessary to
// convert from one to the other, grouped into maximal blocks of the same
// kind. Identical inputs produce a single Same change.
func Lines(x, y string) []Change {
	return changes(strings.Split(x, "\n"), strings.Split(y, "\n"), "\n")
}

// Chars compares x and y character by character. This is the primitive used
// to highlight the changed parts of two paired lines.
func Chars(x, y string) []Change {
	return changes(matcher.SplitRunes(x), matcher.SplitRunes(y), "")
}

func changes(xs, ys []string, sep string) []Change {
	var out []Change
	for _, op := range matcher.Strings(xs, ys) {
		l := strings.Join(xs[op.I1:op.I2], sep)
		r := strings.Join(ys[op.J1:op.J2], sep)
		switch op.Tag {
		case matcher.Equal:
			out = append(out, Change{Same, l, r})
		case matcher.Insert:
			out = append(out, Change{Add, "", r})
		case matcher.Delete:
			out = append(out, Change{Remove, l, ""})
		case matcher.Replace:
			out = append(out, Change{Replace, l, r})
		}
	}
	return out
}
