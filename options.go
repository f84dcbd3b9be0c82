// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import "go.uber.org/zap"

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger warnings are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l.Named("svg2vd")
		}
	}
}

// WithErrorMode sets how non-fatal problems are handled. The default is
// WarnErrorMode.
func WithErrorMode(m ErrorMode) Option {
	return func(c *Converter) {
		c.mode = m
	}
}

// WithDefaultSize sets the viewport size used when a document declares
// neither a viewBox nor a width and height. The default is 24.
func WithDefaultSize(size float64) Option {
	return func(c *Converter) {
		if size > 0 {
			c.defaultSize = size
		}
	}
}
