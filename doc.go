// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/htmltext

/*
Package htmltext renders HTML documents into flat plain text with list syntax.

The package walks the parsed HTML tree depth-first and dispatches every element
to a handler selected by tag name. List containers and items carry the only
state that survives the recursive descent: ordered-list numbering honours the
start attribute per list level, and multi-paragraph items are re-indented after
their content has been emitted.

Unordered and menu lists render as bullets, ordered lists as numbers:

	* first bullet
	* second bullet
	  continuation line indented by 2
	1. first ordered item
	2. second ordered item
	   continuation line indented by 3

Basic conversion from bytes:

	text, err := htmltext.Convert([]byte(`<ol start="3"><li>X</li><li>Y</li></ol>`), htmltext.Options{})
	if err != nil {
		return err
	}

	fmt.Print(text) // 3. X\n4. Y\n

Convert a file, decoding its charset from a content type hint:

	text, err := htmltext.ConvertFile("page.html", htmltext.Options{
		ContentType:  "text/html; charset=windows-1251",
		BulletMarker: "-",
	})
	if err != nil {
		return err
	}

	fmt.Print(text)

Bind additional tags to existing handler kinds:

	text, err := htmltext.Convert(data, htmltext.Options{
		Tags: map[string]string{"dir": htmltext.KindUnorderedList},
	})

Every conversion owns its state, so independent documents may be converted
concurrently.
*/
package htmltext
