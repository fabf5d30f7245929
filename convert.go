// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// utf8BOM is stripped from input that is passed through undecoded.
var utf8BOM = []byte("\xef\xbb\xbf")

// ConvertFile reads HTML from file and renders plain text.
func ConvertFile(path string, opt Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInputFile, err)
	}

	return Convert(data, opt)
}

// ConvertReader reads HTML from r until EOF and renders plain text.
func ConvertReader(r io.Reader, opt Options) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return Convert(data, opt)
}

// Convert decodes HTML bytes and renders deterministic plain text.
func Convert(data []byte, opt Options) (string, error) {
	log := opt.logger()

	decoded, charsetName, err := decodeInput(data, opt.ContentType)
	if err != nil {
		return "", err
	}

	root, err := html.Parse(bytes.NewReader(decoded))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseHTML, err)
	}

	text, err := ConvertNode(root, opt)
	if err != nil {
		return "", err
	}

	log.Debug("converted document",
		zap.String("charset", charsetName),
		zap.Int("input_bytes", len(data)),
		zap.Int("output_bytes", len(text)),
	)

	return text, nil
}

// ConvertNode renders an already parsed HTML tree into plain text.
func ConvertNode(root *html.Node, opt Options) (string, error) {
	tags, err := buildTagTable(opt.Tags)
	if err != nil {
		return "", err
	}

	if root == nil {
		return "", nil
	}

	printer := newPrinter(tags, normalizeListMarker(opt.BulletMarker), opt.logger())
	printer.walk(root)

	return normalizeOutput(printer.String()), nil
}

// decodeInput converts input to UTF-8 and returns the detected charset name.
func decodeInput(data []byte, contentType string) ([]byte, string, error) {
	if err := validateContentType(contentType); err != nil {
		return nil, "", err
	}

	enc, name, certain := charset.DetermineEncoding(data, contentType)
	if !certain && utf8.Valid(data) {
		return bytes.TrimPrefix(data, utf8BOM), "utf-8", nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w %q: %w", ErrDecodeCharset, name, err)
	}

	return bytes.TrimPrefix(decoded, utf8BOM), name, nil
}

// validateContentType rejects malformed MIME types and unknown charsets.
func validateContentType(contentType string) error {
	if contentType == "" {
		return nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return fmt.Errorf("%w: content type %q: %w", ErrDecodeCharset, contentType, err)
	}

	name, ok := params["charset"]
	if !ok {
		return nil
	}

	if enc, _ := charset.Lookup(name); enc == nil {
		return fmt.Errorf("%w: unknown charset %q", ErrDecodeCharset, name)
	}

	return nil
}
