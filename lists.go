// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// listType is the kind of list container governing an item.
type listType int

const (
	listNone listType = iota
	listUnordered
	listOrdered
	listMenu
)

// listTypeOf maps handler kind to list type.
func listTypeOf(kind string) listType {
	switch kind {
	case KindUnorderedList:
		return listUnordered
	case KindOrderedList:
		return listOrdered
	case KindMenuList:
		return listMenu
	default:
		return listNone
	}
}

// String returns a string representation of the list type.
func (t listType) String() string {
	switch t {
	case listUnordered:
		return "unordered"
	case listOrdered:
		return "ordered"
	case listMenu:
		return "menu"
	default:
		return "none"
	}
}

// padding is the continuation-line indent aligning text under the item prefix.
// Menu items share the bullet prefix, so they share its indent.
func (t listType) padding() int {
	switch t {
	case listOrdered:
		return 3
	case listUnordered, listMenu:
		return 2
	default:
		return 0
	}
}

// listHandler brackets a list container and scopes its numbering context.
type listHandler struct {
	kind   string
	opened bool
}

func newListHandler(kind string) TagHandler {
	return &listHandler{kind: kind}
}

// Handle opens numbering context for this list, no "li" handling here.
func (h *listHandler) Handle(node *html.Node, p *Printer) {
	start := listStart{}
	if h.kind == KindOrderedList {
		start = parseListStart(node)
	}

	p.pushListStart(start)
	h.opened = true
	p.log.Debug("list opened",
		zap.Stringer("list", listTypeOf(h.kind)),
		zap.Int("depth", len(p.ParentChain())+1),
	)
	p.AppendNewline()
}

// AfterHandle restores numbering context of the enclosing list.
func (h *listHandler) AfterHandle(p *Printer) {
	if h.opened {
		p.popListStart()
		h.opened = false
	}

	p.AppendNewline()
	p.AppendNewline()
}

// parseListStart reads the start attribute of an ordered list.
func parseListStart(node *html.Node) listStart {
	if node == nil {
		return listStart{}
	}

	for _, attr := range node.Attr {
		if attr.Namespace != "" || attr.Key != "start" {
			continue
		}

		value, err := strconv.ParseUint(strings.TrimSpace(attr.Val), 10, 32)
		if err != nil {
			return listStart{}
		}

		return listStart{value: uint32(value), set: true}
	}

	return listStart{}
}

// listItemHandler emits the item prefix and re-indents the item's content.
type listItemHandler struct {
	list  listType
	start int
}

func newListItemHandler(string) TagHandler {
	return &listItemHandler{}
}

func (h *listItemHandler) Handle(_ *html.Node, p *Printer) {
	h.list = governingList(p)
	if h.list == listNone {
		// orphan items render as plain inline content
		p.log.Debug("list item without enclosing list", zap.Strings("parents", p.ParentChain()))
		return
	}

	if last, ok := p.LastRune(); !ok || last != '\n' {
		p.AppendNewline()
	}

	depth := len(p.ParentChain())
	offset := uint64(1)
	if value, ok := p.ListStart(); ok {
		offset = uint64(value)
	}

	switch h.list {
	case listUnordered, listMenu:
		p.AppendString(p.marker + " ")
	case listOrdered:
		ordinal := uint64(p.SiblingCount(depth, KindListItem)) + offset
		p.AppendString(strconv.FormatUint(ordinal, 10) + ". ")
	}

	h.start = p.Len()
}

func (h *listItemHandler) AfterHandle(p *Printer) {
	if h.list == listNone {
		return
	}

	// block children start with newlines, the first line must follow the prefix
	for h.start < p.Len() {
		r, _ := p.RuneAt(h.start)
		if r != '\n' && r != ' ' {
			break
		}

		p.RemoveAt(h.start)
	}

	// backward, so insertions never shift positions still to be visited
	padding := strings.Repeat(" ", h.list.padding())
	for index := p.Len() - 1; index >= h.start; index-- {
		if r, _ := p.RuneAt(index); r == '\n' {
			p.InsertString(index+1, padding)
		}
	}
}

// governingList finds type of the nearest enclosing list container.
func governingList(p *Printer) listType {
	chain := p.ParentChain()
	for index := len(chain) - 1; index >= 0; index-- {
		if list := listTypeOf(p.kindOf(chain[index])); list != listNone {
			return list
		}
	}

	return listNone
}
