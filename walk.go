// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import (
	"strings"

	"golang.org/x/net/html"
)

// walk renders node and its subtree depth-first.
func (p *Printer) walk(node *html.Node) {
	var handler TagHandler = inlineHandler{}
	tag := ""

	switch node.Type {
	case html.TextNode:
		p.appendText(node.Data)
	case html.ElementNode:
		tag = node.Data
		// markup inside preformatted blocks is kept as plain text flow
		if !p.hasAncestorKind(KindPreformatted) {
			handler = p.tags.newHandler(tag)
		}
	}

	// the node itself is not in the parent chain yet
	handler.Handle(node, p)

	p.parentChain = append(p.parentChain, tag)
	depth := len(p.parentChain)
	p.siblings[depth] = nil

	skip := false
	if skipper, ok := handler.(descendantSkipper); ok {
		skip = skipper.SkipDescendants()
	}

	if !skip {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			p.walk(child)
			if child.Type == html.ElementNode {
				p.siblings[depth] = append(p.siblings[depth], child.Data)
			}
		}
	}

	delete(p.siblings, depth)
	p.parentChain = p.parentChain[:depth-1]

	handler.AfterHandle(p)
}

// appendText appends one text node, collapsing whitespace outside preformatted blocks.
func (p *Printer) appendText(text string) {
	if p.hasAncestorKind(KindPreformatted) {
		p.AppendString(normalizeLineEndings(text))
		return
	}

	if strings.TrimSpace(text) == "" {
		last, ok := p.LastRune()
		if !ok || last == '\n' || last == ' ' {
			return
		}
	}

	p.AppendString(collapseWhitespace(text))
}
