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

package align

import (
	"unicode/utf8"

	"jiff.dev/jiff/internal/matcher"
)

// gapCost is the cost of leaving a line unpaired: its length in runes. This
// is the cost of displaying the line as a plain removal or insertion and
// establishes the baseline that any pairing must beat or match.
func gapCost(line string) int {
	return utf8.RuneCountInString(line)
}

// substitutionCost is the cost of pairing two lines: the number of inserted
// and deleted characters between them, times half that number rounded up.
// The quadratic shape discounts pairs with small, local edits relative to
// heavily rewritten pairs, so near-identical lines pair up well below the sum
// of their gap costs. Identical lines cost zero.
func substitutionCost(b, a string) int {
	edits := 0
	for _, op := range matcher.Runes(b, a) {
		switch op.Tag {
		case matcher.Delete:
			edits += op.I2 - op.I1
		case matcher.Insert:
			edits += op.J2 - op.J1
		case matcher.Replace:
			edits += (op.I2 - op.I1) + (op.J2 - op.J1)
		}
	}
	return edits * ((edits + 1) / 2)
}
