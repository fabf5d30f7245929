// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import "errors"

var (
	// ErrReadInputFile is returned when HTML file loading fails.
	ErrReadInputFile = errors.New("read input file")
	// ErrReadInput is returned when reading HTML from a stream fails.
	ErrReadInput = errors.New("read input")
	// ErrDecodeCharset is returned when input charset cannot be detected or decoded.
	ErrDecodeCharset = errors.New("decode charset")
	// ErrParseHTML is returned when HTML tree building fails.
	ErrParseHTML = errors.New("parse html")
	// ErrUnknownHandlerKind is returned when a tag is bound to a handler kind that is not registered.
	ErrUnknownHandlerKind = errors.New("unknown handler kind")
)
