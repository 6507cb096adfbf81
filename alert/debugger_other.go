// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package alert

// DebuggerAttached reports whether a debugger is attached to the process.
// It is not detected on this platform.
func DebuggerAttached() bool { return false }

func outputDebugString(s string) bool { return false }
