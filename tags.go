// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Handler kinds accepted by Options.Tags.
const (
	KindUnorderedList = "unordered-list"
	KindOrderedList   = "ordered-list"
	KindMenuList      = "menu-list"
	KindListItem      = "list-item"
	KindParagraph     = "paragraph"
	KindLineBreak     = "line-break"
	KindRule          = "rule"
	KindContainer     = "container"
	KindPreformatted  = "preformatted"
	KindSkip          = "skip"
	KindInline        = "inline"
)

// handlerFactories creates a fresh handler instance per element, keyed by kind.
var handlerFactories = map[string]func(kind string) TagHandler{
	KindUnorderedList: newListHandler,
	KindOrderedList:   newListHandler,
	KindMenuList:      newListHandler,
	KindListItem:      newListItemHandler,
	KindParagraph:     newParagraphHandler,
	KindLineBreak:     newParagraphHandler,
	KindRule:          newParagraphHandler,
	KindContainer:     newContainerHandler,
	KindPreformatted:  newContainerHandler,
	KindSkip:          func(string) TagHandler { return skipHandler{} },
	KindInline:        func(string) TagHandler { return inlineHandler{} },
}

// defaultTags binds HTML tag names to handler kinds. Unlisted tags are inline.
var defaultTags = map[string]string{
	"ul":   KindUnorderedList,
	"ol":   KindOrderedList,
	"menu": KindMenuList,
	"li":   KindListItem,

	"p":  KindParagraph,
	"br": KindLineBreak,
	"hr": KindRule,

	"div":        KindContainer,
	"section":    KindContainer,
	"header":     KindContainer,
	"footer":     KindContainer,
	"article":    KindContainer,
	"main":       KindContainer,
	"nav":        KindContainer,
	"aside":      KindContainer,
	"figure":     KindContainer,
	"blockquote": KindContainer,
	"h1":         KindContainer,
	"h2":         KindContainer,
	"h3":         KindContainer,
	"h4":         KindContainer,
	"h5":         KindContainer,
	"h6":         KindContainer,

	"pre": KindPreformatted,

	"head":     KindSkip,
	"script":   KindSkip,
	"style":    KindSkip,
	"template": KindSkip,
	"noscript": KindSkip,
}

// tagTable maps lower-case tag names to handler kinds for one conversion.
type tagTable map[string]string

// buildTagTable merges caller bindings over defaults and validates kinds.
func buildTagTable(overrides map[string]string) (tagTable, error) {
	table := make(tagTable, len(defaultTags)+len(overrides))
	maps.Copy(table, defaultTags)

	for tag, kind := range overrides {
		tag = strings.ToLower(strings.TrimSpace(tag))
		kind = strings.ToLower(strings.TrimSpace(kind))
		if tag == "" {
			continue
		}

		if _, ok := handlerFactories[kind]; !ok {
			return nil, fmt.Errorf("%w %q for tag %q", ErrUnknownHandlerKind, kind, tag)
		}

		table[tag] = kind
	}

	return table, nil
}

// kind returns handler kind bound to tag, inline when unbound.
func (t tagTable) kind(tag string) string {
	if kind, ok := t[tag]; ok {
		return kind
	}

	return KindInline
}

// newHandler creates a handler for one element with given tag name.
func (t tagTable) newHandler(tag string) TagHandler {
	kind := t.kind(tag)
	return handlerFactories[kind](kind)
}

// HandlerKinds returns all registered handler kinds sorted by name.
func HandlerKinds() []string {
	kinds := make([]string, 0, len(handlerFactories))
	for kind := range handlerFactories {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)
	return kinds
}

// DefaultTags returns a copy of built-in tag to kind bindings.
func DefaultTags() map[string]string {
	return maps.Clone(defaultTags)
}
