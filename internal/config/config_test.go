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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"jiff.dev/jiff/internal/config"
	"jiff.dev/jiff/render"
)

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want config.Config
	}{
		{
			name: "default",
			opts: nil,
			want: config.Default,
		},
		{
			name: "color-off",
			opts: []config.Option{
				render.Color(false),
			},
			want: config.Config{
				Color:   false,
				Width:   config.Default.Width,
				TabSize: config.Default.TabSize,
			},
		},
		{
			name: "width",
			opts: []config.Option{
				render.Width(80),
			},
			want: config.Config{
				Color:   config.Default.Color,
				Width:   80,
				TabSize: config.Default.TabSize,
			},
		},
		{
			name: "everything",
			opts: []config.Option{
				render.Color(false),
				render.Width(80),
				render.TabSize(8),
			},
			want: config.Config{
				Color:   false,
				Width:   80,
				TabSize: 8,
			},
		},
		{
			name: "override",
			opts: []config.Option{
				render.Width(80),
				render.Width(100),
			},
			want: config.Config{
				Color:   config.Default.Color,
				Width:   100,
				TabSize: config.Default.TabSize,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := config.FromOptions(tt.opts, config.Color|config.Width|config.TabSize)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromOptions(...) results are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromOptions(...) with a disallowed option didn't panic")
		}
	}()
	config.FromOptions([]config.Option{render.Width(80)}, config.Color)
}
