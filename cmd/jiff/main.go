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

// jiff is a colored diff tool for the terminal.
//
// It compares two files line by line, aligns the lines of changed blocks,
// and highlights character-level changes, optionally side by side. With
// --git-diff it implements the GIT_EXTERNAL_DIFF driver contract, so
// GIT_EXTERNAL_DIFF="jiff -g" git diff shows jiff output.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jiff.dev/jiff/render"
)

var (
	sideBySide bool
	noColor    bool
	gitDiff    bool
	verbose    bool
)

func main() {
	cmd := &cobra.Command{
		Use:          "jiff [flags] file1 file2",
		Short:        "Colored diff tool",
		Args:         checkArgs,
		RunE:         run,
		SilenceUsage: true,
	}
	cmd.Flags().BoolVarP(&sideBySide, "side-by-side", "s", false, "enable side-by-side diffing")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colorization of the output")
	cmd.Flags().BoolVarP(&gitDiff, "git-diff", "g", false, "run as a GIT_EXTERNAL_DIFF driver")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func checkArgs(cmd *cobra.Command, args []string) error {
	if gitDiff {
		// git invokes the driver with path old-file old-hex old-mode
		// new-file new-hex new-mode [...] or with a single path for
		// unmodified entries.
		if len(args) != 1 && len(args) < 7 {
			return fmt.Errorf("expected 1 or at least 7 args from git, got %d", len(args))
		}
		return nil
	}
	return cobra.ExactArgs(2)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	logrus.SetOutput(os.Stderr)
	if verbose || os.Getenv("JIFF_DEBUG") == "1" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if gitDiff {
		return runGitDiff(args)
	}

	left, err := readFile(args[0])
	if err != nil {
		return err
	}
	right, err := readFile(args[1])
	if err != nil {
		return err
	}
	return writeDiff(os.Stdout, left, right)
}

// runGitDiff handles one GIT_EXTERNAL_DIFF invocation. The old and new
// files may be /dev/null for creations and deletions; a single-argument
// invocation means the entry is unmodified and prints nothing.
func runGitDiff(args []string) error {
	if len(args) == 1 {
		return nil
	}
	path, oldFile, oldHex := args[0], args[1], args[2]
	newFile, newHex, newMode := args[4], args[5], args[6]

	readSide := func(name string) (string, error) {
		if name == "/dev/null" {
			return "", nil
		}
		return readFile(name)
	}
	left, err := readSide(oldFile)
	if err != nil {
		return err
	}
	right, err := readSide(newFile)
	if err != nil {
		return err
	}

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %.10s..%.10s %s\n", oldHex, newHex, newMode)
	fmt.Printf("--- a/%s\n", path)
	fmt.Printf("+++ b/%s\n", path)
	return writeDiff(os.Stdout, left, right)
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %v", path, err)
	}
	return string(b), nil
}

func writeDiff(f *os.File, left, right string) error {
	opts := []render.Option{render.Color(colorEnabled(f))}
	if sideBySide {
		opts = append(opts, render.Width(terminalWidth(f)))
		return render.SideBySide(f, left, right, opts...)
	}
	return render.Unified(f, left, right, opts...)
}

func colorEnabled(f *os.File) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func terminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	return 0 // render falls back to its default
}
