// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alert

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procIsDebuggerPresent  = kernel32.NewProc("IsDebuggerPresent")
	procOutputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

// DebuggerAttached reports whether a debugger is attached to the process.
func DebuggerAttached() bool {
	if procIsDebuggerPresent.Find() != nil {
		return false
	}
	r, _, _ := procIsDebuggerPresent.Call()
	return r != 0
}

func outputDebugString(s string) bool {
	if procOutputDebugStringW.Find() != nil {
		return false
	}
	p, err := windows.UTF16PtrFromString(s)
	if err != nil {
		return false
	}
	procOutputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
	return true
}
