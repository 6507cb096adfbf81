// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/colorgrade/alert"
)

// Include reads the file at path and processes its #include "file"
// statements recursively, resolving each relative to the directory
// of the file containing it. Included lines are commented out and
// followed by the included source. A file already on the include
// stack is not included again. It returns the normalized paths of
// every file it tried to read, starting with path itself. Files that
// can not be read are listed too, so that creating them later
// invalidates whatever was built without them.
func Include(path string) (string, []string, error) {
	path = Normalize(path)
	files := []string{path}
	src, err := include(path, []string{path}, &files)
	return src, files, err
}

func include(path string, stack []string, files *[]string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	fl := splitLines(string(b))
	dir := filepath.Dir(path)
	for li := len(fl) - 1; li >= 0; li-- {
		ln := strings.TrimSpace(fl[li])
		if !strings.HasPrefix(ln, `#include "`) {
			continue
		}
		fn := ln[10:]
		qi := strings.Index(fn, `"`)
		if qi < 0 {
			alert.Warning(fmt.Sprintf("shaders: malformed #include in %s:%d: no final quote", path, li+1))
			continue
		}
		ip := fn[:qi]
		if !filepath.IsAbs(ip) {
			ip = filepath.Join(dir, ip)
		}
		ip = Normalize(ip)
		fl[li] = "// " + ln
		if slices.Contains(stack, ip) {
			continue
		}
		if !slices.Contains(*files, ip) {
			*files = append(*files, ip)
		}
		isrc, err := include(ip, append(stack, ip), files)
		if err != nil {
			alert.Warning(fmt.Sprintf("shaders: could not include %s from %s: %v", ip, path, err))
			continue
		}
		fl = slices.Insert(fl, li+1, splitLines(isrc)...)
	}
	return strings.Join(fl, "\n"), nil
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
