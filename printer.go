// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

package htmltext

import (
	"go.uber.org/zap"
)

// listStart is one entry of the ordered-list numbering context.
type listStart struct {
	value uint32
	set   bool
}

// Printer is the per-render output state shared by all tag handlers.
//
// The buffer is kept as runes, so every offset accepted or returned by Printer
// is a rune index and can never split a multi-byte character.
type Printer struct {
	log *zap.Logger

	// siblings maps nesting depth to tag names of element children already
	// fully processed at that depth.
	siblings map[int][]string

	tags   tagTable
	marker string

	data        []rune
	parentChain []string
	listStarts  []listStart
}

// newPrinter creates an empty printer bound to one tag table.
func newPrinter(tags tagTable, marker string, log *zap.Logger) *Printer {
	if log == nil {
		log = zap.NewNop()
	}

	return &Printer{
		log:      log,
		siblings: make(map[int][]string),
		tags:     tags,
		marker:   marker,
	}
}

// AppendString appends text to the end of the buffer.
func (p *Printer) AppendString(text string) {
	p.data = append(p.data, []rune(text)...)
}

// AppendNewline appends one line feed to the end of the buffer.
func (p *Printer) AppendNewline() {
	p.data = append(p.data, '\n')
}

// InsertString inserts text before the rune at offset at.
// Offsets past the end append.
func (p *Printer) InsertString(at int, text string) {
	if at >= len(p.data) {
		p.AppendString(text)
		return
	}

	if at < 0 {
		at = 0
	}

	inserted := []rune(text)
	p.data = append(p.data[:at], append(inserted, p.data[at:]...)...)
}

// RemoveAt removes the rune at offset at; out of range offsets are ignored.
func (p *Printer) RemoveAt(at int) {
	if at < 0 || at >= len(p.data) {
		return
	}

	p.data = append(p.data[:at], p.data[at+1:]...)
}

// RuneAt returns the rune at offset at.
func (p *Printer) RuneAt(at int) (rune, bool) {
	if at < 0 || at >= len(p.data) {
		return 0, false
	}

	return p.data[at], true
}

// LastRune returns the last rune of the buffer.
func (p *Printer) LastRune() (rune, bool) {
	return p.RuneAt(len(p.data) - 1)
}

// Len returns buffer length in runes.
func (p *Printer) Len() int {
	return len(p.data)
}

// String returns raw buffer content.
func (p *Printer) String() string {
	return string(p.data)
}

// ParentChain returns ancestor tag names of the node being handled, innermost last.
func (p *Printer) ParentChain() []string {
	return p.parentChain
}

// SiblingCount reports how many element siblings bound to handler kind have
// already been processed at the given depth.
func (p *Printer) SiblingCount(depth int, kind string) int {
	count := 0
	for _, name := range p.siblings[depth] {
		if p.kindOf(name) == kind {
			count++
		}
	}

	return count
}

// ListStart returns start offset of the innermost open list, if it has one.
func (p *Printer) ListStart() (uint32, bool) {
	if len(p.listStarts) == 0 {
		return 0, false
	}

	top := p.listStarts[len(p.listStarts)-1]
	return top.value, top.set
}

// pushListStart opens numbering context for one list container.
func (p *Printer) pushListStart(start listStart) {
	p.listStarts = append(p.listStarts, start)
}

// popListStart restores numbering context of the enclosing list.
func (p *Printer) popListStart() {
	if len(p.listStarts) == 0 {
		return
	}

	p.listStarts = p.listStarts[:len(p.listStarts)-1]
}

// kindOf resolves handler kind for a tag name.
func (p *Printer) kindOf(tag string) string {
	return p.tags.kind(tag)
}

// hasAncestorKind reports whether any ancestor resolves to kind.
func (p *Printer) hasAncestorKind(kind string) bool {
	for _, tag := range p.parentChain {
		if p.kindOf(tag) == kind {
			return true
		}
	}

	return false
}
