// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import "go.uber.org/zap"

// defaultListMarker is used when caller does not provide bullet marker style.
const defaultListMarker = "*"

// Options configures HTML to text conversion.
type Options struct {
	// Logger receives debug diagnostics. Nil disables logging.
	Logger *zap.Logger

	// Tags binds extra or overriding HTML tag names to handler kinds
	// (see HandlerKinds), for example "dir" to KindUnorderedList.
	Tags map[string]string

	// BulletMarker is the unordered and menu item marker: "*" (default), "-" or "+".
	BulletMarker string

	// ContentType is an optional MIME type with charset parameter used to decode
	// input, for example "text/html; charset=windows-1251". When empty, charset
	// is detected from BOM and meta tags, falling back to UTF-8.
	ContentType string
}

// logger returns named caller logger or a no-op logger.
func (opt Options) logger() *zap.Logger {
	if opt.Logger == nil {
		return zap.NewNop()
	}

	return opt.Logger.Named("htmltext")
}
