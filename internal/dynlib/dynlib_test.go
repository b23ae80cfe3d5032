// Copyright 2024 Gustavo C. Viegas. All rights reserved.

//go:build darwin || freebsd || linux

package dynlib

import "testing"

func TestOpenMissing(t *testing.T) {
	if _, err := Open("/nonexistent/libdoesnotexist.so"); err == nil {
		t.Fatal("Open: have nil error, want non-nil")
	}
}
