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

// Package matcher wraps the difflib sequence matcher used for both line-level
// and character-level comparisons.
//
// The matcher partitions both inputs into a sequence of opcodes, each
// covering a contiguous range of both inputs, in increasing order. The
// alignment cost model is calibrated against difflib semantics (including
// the automatic junk heuristic for long inputs), so this package must not be
// swapped for a matcher with different block boundaries.
package matcher

import "github.com/pmezard/go-difflib/difflib"

// OpCode is a single matcher operation covering tokens [I1:I2) of the first
// input and [J1:J2) of the second.
type OpCode = difflib.OpCode

// Opcode tags as emitted by the matcher.
const (
	Equal   byte = 'e'
	Delete  byte = 'd'
	Insert  byte = 'i'
	Replace byte = 'r'
)

// Strings compares two token sequences and returns the opcodes transforming
// x into y.
func Strings(x, y []string) []OpCode {
	return difflib.NewMatcher(x, y).GetOpCodes()
}

// Runes compares the runes of x and y and returns the opcodes transforming
// x into y. The ranges index into [SplitRunes] of the respective input.
func Runes(x, y string) []OpCode {
	return Strings(SplitRunes(x), SplitRunes(y))
}

// SplitRunes splits s into one single-rune string per rune.
func SplitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
