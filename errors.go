// Copyright 2018 The oksvg Authors. All rights reserved.

package svg2vd

import (
	"errors"
	"fmt"
)

// ErrorMode decides what happens with non-fatal conversion problems.
type ErrorMode uint8

const (
	// IgnoreErrorMode only records warnings on the result.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode records warnings and logs them.
	WarnErrorMode
	// StrictErrorMode aborts the conversion on the first warning.
	StrictErrorMode
)

var (
	// ErrNoRoot is returned when the document has no svg root element.
	ErrNoRoot = errors.New("no svg root element")
	// ErrEmptyDocument is returned when the input holds no element at all.
	ErrEmptyDocument = errors.New("empty document")
	// ErrStrict wraps the first warning raised in StrictErrorMode.
	ErrStrict = errors.New("strict mode")
)

// ParseError reports input that is not well-formed markup or that lacks a
// root viewport element. No partial output is produced.
type ParseError struct {
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "svg2vd: " + e.Msg
	}
	return fmt.Sprintf("svg2vd: %s: %v", e.Msg, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WarningKind classifies a skipped piece of input.
type WarningKind uint8

const (
	MalformedPath WarningKind = iota
	UnknownCommand
	UnknownElement
	GradientCycle
	GradientMissing
	BadValue
	BadReference
)

func (k WarningKind) String() string {
	switch k {
	case MalformedPath:
		return "malformed path"
	case UnknownCommand:
		return "unknown command"
	case UnknownElement:
		return "unknown element"
	case GradientCycle:
		return "gradient cycle"
	case GradientMissing:
		return "gradient missing"
	case BadValue:
		return "bad value"
	case BadReference:
		return "bad reference"
	default:
		return "<unknown WarningKind>"
	}
}

// Warning describes input that was skipped while the rest of the document
// was still converted.
type Warning struct {
	Kind    WarningKind
	Element string // tag or id of the element concerned, if known
	Msg     string
}

func (w Warning) String() string {
	if w.Element == "" {
		return w.Kind.String() + ": " + w.Msg
	}
	return w.Kind.String() + " in <" + w.Element + ">: " + w.Msg
}
