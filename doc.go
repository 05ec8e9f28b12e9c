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

// Package jiff computes line- and character-level differences between two
// text documents as blocks of changes.
//
// [Lines] splits both documents into lines and groups the comparison into
// maximal blocks that are the same, added, removed, or replaced. [Chars]
// does the same for the characters of two strings and is used to highlight
// the changed parts within a line.
//
// Replace blocks are deliberately coarse: they span consecutive changed
// lines without deciding which before-line corresponds to which after-line.
// That pairing is computed by [jiff.dev/jiff/align], and
// [jiff.dev/jiff/render] turns the result into colored terminal output.
package jiff
