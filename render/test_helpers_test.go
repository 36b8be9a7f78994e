// SPDX-License-Identifier: MIT
// Package render_test contains test helpers
//
// Purpose:
//   • Shared fixtures (the 3×2 float and int matrices) and sink doubles.

package render_test

import (
	"errors"
	"strings"
	"testing"
)

// Fixtures used across the render tests.
var (
	floats = []float64{3.14159, 2.71828, 1.41421, 0.57721, -1.0, 42.0}
	ints   = []int{3, 2, 1, 0, -1, 42}
)

var errSink = errors.New("sink closed")

// failWriter accepts ok writes and then fails every later one.
type failWriter struct {
	ok     int
	writes []string
}

func (f *failWriter) Write(p []byte) (int, error) {
	if len(f.writes) >= f.ok {
		return 0, errSink
	}
	f.writes = append(f.writes, string(p))

	return len(p), nil
}

// lines splits rendered output into lines without the trailing empty one.
func lines(t *testing.T, s string) []string {
	t.Helper()
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		t.Fatalf("output does not end with a newline: %q", s)
	}

	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
