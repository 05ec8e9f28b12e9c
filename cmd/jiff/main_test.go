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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckArgs(t *testing.T) {
	tests := []struct {
		name    string
		gitDiff bool
		args    []string
		wantErr bool
	}{
		{name: "two-files", args: []string{"a", "b"}},
		{name: "one-file", args: []string{"a"}, wantErr: true},
		{name: "three-files", args: []string{"a", "b", "c"}, wantErr: true},
		{name: "git-unmodified", gitDiff: true, args: []string{"path"}},
		{name: "git-changed", gitDiff: true, args: []string{"path", "old", "hex", "mode", "new", "hex", "mode"}},
		{name: "git-rename", gitDiff: true, args: []string{"path", "old", "hex", "mode", "new", "hex", "mode", "newpath", "similarity"}},
		{name: "git-too-few", gitDiff: true, args: []string{"path", "old", "hex"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func(v bool) { gitDiff = v }(gitDiff)
			gitDiff = tt.gitDiff
			err := checkArgs(nil, tt.args)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestReadFileError(t *testing.T) {
	_, err := readFile("testdata/does-not-exist")
	require.Error(t, err)
	require.ErrorContains(t, err, "could not read testdata/does-not-exist")
}
