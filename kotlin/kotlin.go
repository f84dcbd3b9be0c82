// Copyright 2018 The oksvg Authors. All rights reserved.

// Package kotlin carries the converter re-expressed as Kotlin source, for
// projects that need to run the conversion on the device.
package kotlin

import (
	_ "embed"
	"strings"
)

//go:embed converter.kt
var source string

// EntryPoint is the Kotlin class that performs the conversion.
const EntryPoint = "SvgToAndroidConverter"

// Source returns the Kotlin source text verbatim.
func Source() string {
	return source
}

// WithPackage returns the source with a package declaration prepended.
func WithPackage(pkg string) string {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return source
	}
	return "package " + pkg + "\n\n" + source
}
