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

// Package align pairs up the lines of a replace block.
//
// When a line-level diff reports that a block of before-lines was replaced by
// a block of after-lines, character-level highlighting needs to know which
// before-line corresponds to which after-line. Align computes the pairing
// that minimizes the total display cost: pairing two lines costs their
// character-level edit profile, leaving a line unpaired costs its length.
// An alignment therefore never costs more than rendering every line as a
// standalone removal or insertion.
//
// The pairing is found as a shortest path through a lattice of consumption
// states, see lattice.go.
package align

import "errors"

// Op describes how a [Pair] consumes lines.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Delete     Op = iota // The before-line is left unpaired.
	Insert               // The after-line is left unpaired.
	Substitute           // The before-line and after-line are paired.
)

// Pair is a single element of an alignment.
//
//   - For Delete, Before contains the unpaired before-line and After is unset.
//   - For Insert, After contains the unpaired after-line and Before is unset.
//   - For Substitute, Before and After contain the paired lines.
type Pair struct {
	Op            Op
	Before, After string
}

// Pairs aligns the lines of a replace block and returns the pairing in
// order: every line of before and after appears in exactly one pair, either
// paired with a counterpart or alone.
//
// At least one of the two blocks must be non-empty, passing two empty blocks
// is an error. A block that is empty on one side degenerates to a sequence of
// pure insertions or deletions.
func Pairs(before, after []string) ([]Pair, error) {
	if len(before) == 0 && len(after) == 0 {
		return nil, errors.New("align: replace block is empty on both sides")
	}
	lat := newLattice(before, after)
	lat.solve()
	return lat.decode(), nil
}
