// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import "golang.org/x/net/html"

// TagHandler renders one element. Handle runs before the element's children
// are walked, AfterHandle after, exactly once each.
type TagHandler interface {
	Handle(node *html.Node, p *Printer)
	AfterHandle(p *Printer)
}

// descendantSkipper is implemented by handlers that suppress their children.
type descendantSkipper interface {
	SkipDescendants() bool
}

// inlineHandler emits nothing of its own; children render in place.
type inlineHandler struct{}

func (inlineHandler) Handle(*html.Node, *Printer) {}

func (inlineHandler) AfterHandle(*Printer) {}

// skipHandler drops the element together with its subtree.
type skipHandler struct{}

func (skipHandler) Handle(*html.Node, *Printer) {}

func (skipHandler) AfterHandle(*Printer) {}

func (skipHandler) SkipDescendants() bool {
	return true
}

// paragraphHandler renders paragraphs, line breaks and thematic breaks.
type paragraphHandler struct {
	kind string
}

func newParagraphHandler(kind string) TagHandler {
	return &paragraphHandler{kind: kind}
}

func (h *paragraphHandler) Handle(_ *html.Node, p *Printer) {
	if h.kind == KindParagraph {
		p.AppendNewline()
		p.AppendNewline()
	}
}

func (h *paragraphHandler) AfterHandle(p *Printer) {
	switch h.kind {
	case KindParagraph:
		p.AppendNewline()
		p.AppendNewline()
	case KindLineBreak:
		p.AppendNewline()
	case KindRule:
		p.AppendNewline()
		p.AppendString("---")
		p.AppendNewline()
	}
}

// containerHandler puts block containers and preformatted blocks on their own lines.
type containerHandler struct{}

func newContainerHandler(string) TagHandler {
	return containerHandler{}
}

func (containerHandler) Handle(_ *html.Node, p *Printer) {
	p.AppendNewline()
}

func (containerHandler) AfterHandle(p *Printer) {
	p.AppendNewline()
}
