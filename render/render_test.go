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
	"bytes"
	"testing"

	"github.com/andreyvit/diff"
)

func TestUnified(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{
			name: "identical",
			x:    "a\nb\n",
			y:    "a\nb\n",
			want: "  a\n  b\n  \n",
		},
		{
			name: "pure-add",
			x:    "a\n",
			y:    "a\nb\n",
			want: "  a\n+ b\n  \n",
		},
		{
			name: "pure-remove",
			x:    "a\nb\n",
			y:    "a\n",
			want: "  a\n- b\n  \n",
		},
		{
			name: "replace-pairs-up",
			x:    "foo\nbar\n",
			y:    "foo\nbaz\n",
			want: "  foo\n- bar\n+ baz\n  \n",
		},
		{
			// The replaced line has no good counterpart: the block renders
			// as the removed lines first, then the added ones.
			name: "replace-with-unpaired-lines",
			x:    "a\nold\n",
			y:    "a\nnew\nb\n",
			want: "  a\n- old\n+ new\n+ b\n  \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Unified(&buf, tt.x, tt.y, Color(false)); err != nil {
				t.Fatalf("Unified(...) failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("Unified(%q, %q) results differ [-want,+got]:\n%s", tt.x, tt.y, diff.LineDiff(tt.want, got))
			}
		})
	}
}

func TestUnifiedColor(t *testing.T) {
	var buf bytes.Buffer
	if err := Unified(&buf, "bar\n", "baz\n"); err != nil {
		t.Fatalf("Unified(...) failed: %v", err)
	}
	// The shared "ba" prefix keeps the plain red/green, the changed
	// character gets the block highlight.
	want := "- \x1b[31mba\x1b[0m\x1b[30;41mr\x1b[0m\n" +
		"+ \x1b[32mba\x1b[0m\x1b[30;42mz\x1b[0m\n" +
		"  \n"
	if got := buf.String(); got != want {
		t.Errorf("Unified(...) results differ [-want,+got]:\n%s", diff.LineDiff(want, got))
	}
}

func TestSideBySide(t *testing.T) {
	tests := []struct {
		name  string
		x, y  string
		width int
		want  string
	}{
		{
			name:  "substituted-line",
			x:     "a\n",
			y:     "b\n",
			width: 40,
			want: "1: a               │1: b\n" +
				"2:                 │2: \n",
		},
		{
			name:  "add-wraps-long-line",
			x:     "hello\n",
			y:     "hello\nworld!!\n",
			width: 20,
			want: "1: hello │1: hello\n" +
				"         │2: world!\n" +
				"         │   !\n" +
				"2:       │3: \n",
		},
		{
			name:  "removed-line-leaves-right-empty",
			x:     "old\nsame\n",
			y:     "same\n",
			width: 40,
			want: "1: old             │   \n" +
				"2: same            │1: same\n" +
				"3:                 │2: \n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := SideBySide(&buf, tt.x, tt.y, Color(false), Width(tt.width)); err != nil {
				t.Fatalf("SideBySide(...) failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("SideBySide(%q, %q) results differ [-want,+got]:\n%s", tt.x, tt.y, diff.LineDiff(tt.want, got))
			}
		})
	}
}

func TestSideBySideColor(t *testing.T) {
	var buf bytes.Buffer
	if err := SideBySide(&buf, "a\n", "a\n", Width(40)); err != nil {
		t.Fatalf("SideBySide(...) failed: %v", err)
	}
	want := "\x1b[1;30m1:\x1b[0m \x1b[30ma\x1b[0m               │\x1b[1;30m1:\x1b[0m \x1b[30ma\x1b[0m\n" +
		"\x1b[1;30m2:\x1b[0m                 │\x1b[1;30m2:\x1b[0m \n"
	if got := buf.String(); got != want {
		t.Errorf("SideBySide(...) results differ [-want,+got]:\n%s", diff.LineDiff(want, got))
	}
}

func TestSideBySideLineNumberWidth(t *testing.T) {
	// Eleven lines on each side: numbers are padded to two digits.
	x := "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\nk\n"
	var buf bytes.Buffer
	if err := SideBySide(&buf, x, x, Color(false), Width(20)); err != nil {
		t.Fatalf("SideBySide(...) failed: %v", err)
	}
	want := " 1: a    │ 1: a\n"
	if got := buf.String(); len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("SideBySide(...) first row differs [-want,+got]:\n%s", diff.LineDiff(want, got))
	}
}
