// Copyright 2025 The dicthtml Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package markup implements tag-tree utilities for StarDict-style
// pseudo-HTML. Dictionary payloads use custom tags (<k>, <c>, nested
// <blockquote>) that have no schema; this package parses them into a
// proper node tree so that callers can classify, clean and re-serialize
// blocks without resorting to regex editing of nested tags.
package markup

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// rootTag is the synthetic element that raw markup is wrapped in before
// parsing. Wrapping gives every payload a single well-known root whose
// direct children are the entry's top-level blocks.
const rootTag = "entry"

// ErrNoTree indicates that markup could not be parsed into a tag tree.
var ErrNoTree = errors.New("markup is not a tag tree")

// Fragment parses raw dictionary markup and returns the synthetic root
// element containing it.
func Fragment(raw string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader("<" + rootTag + ">" + raw + "</" + rootTag + ">"))
	if err != nil {
		return nil, err
	}
	root := FindFunc(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == rootTag
	})
	if root == nil {
		return nil, ErrNoTree
	}
	return root, nil
}

// ChildElements returns the direct element children of n with the given
// tag name in document order.
func ChildElements(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first descendant element of n with the given tag name,
// in depth-first order, or nil.
func Find(n *html.Node, name string) *html.Node {
	return FindFunc(n, func(m *html.Node) bool {
		return m.Type == html.ElementNode && m.Data == name
	})
}

// FindFunc returns the first descendant of n matching fn, or nil. n itself
// is not considered.
func FindFunc(n *html.Node, fn func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if fn(c) {
			return c
		}
		if found := FindFunc(c, fn); found != nil {
			return found
		}
	}
	return nil
}

// FindAllFunc returns all descendants of n matching fn in depth-first
// order.
func FindAllFunc(n *html.Node, fn func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if fn(c) {
			out = append(out, c)
		}
		out = append(out, FindAllFunc(c, fn)...)
	}
	return out
}

// Attr returns the value of the named attribute of n, or the empty string.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// InnerHTML serializes the children of n.
func InnerHTML(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		// Render only fails on unrenderable node types, which cannot occur
		// in a parsed tree.
		_ = html.Render(&b, c)
	}
	return strings.TrimSpace(b.String())
}

// OuterHTML serializes n itself.
func OuterHTML(n *html.Node) string {
	var b strings.Builder
	_ = html.Render(&b, n)
	return b.String()
}

// Clone returns a deep, detached copy of the element n obtained by
// re-parsing its serialized form. It returns nil if n cannot be round
// tripped.
func Clone(n *html.Node) *html.Node {
	root, err := Fragment(OuterHTML(n))
	if err != nil {
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == n.Data {
			return c
		}
	}
	return nil
}

// Remove detaches n from its parent. Removing an already detached node is
// a no-op.
func Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Rename changes the tag name of every descendant element of n named from
// to the name to.
func Rename(n *html.Node, from, to string) {
	for _, m := range FindAllFunc(n, func(m *html.Node) bool {
		return m.Type == html.ElementNode && m.Data == from
	}) {
		m.Data = to
		m.DataAtom = 0
	}
}

// ScrubStyles removes style declarations that break e-reader layout
// (writing-mode and border rules) from every style attribute under n.
// Attributes left with no declarations are dropped entirely.
func ScrubStyles(n *html.Node) {
	nodes := FindAllFunc(n, func(m *html.Node) bool {
		return m.Type == html.ElementNode && Attr(m, "style") != ""
	})
	for _, m := range nodes {
		attrs := m.Attr[:0]
		for _, a := range m.Attr {
			if a.Key != "style" {
				attrs = append(attrs, a)
				continue
			}
			cleaned := scrubStyleValue(a.Val)
			if cleaned != "" {
				a.Val = cleaned
				attrs = append(attrs, a)
			}
		}
		m.Attr = attrs
	}
}

func scrubStyleValue(style string) string {
	var kept []string
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		lower := strings.ToLower(decl)
		if strings.Contains(lower, "writing-mode") {
			continue
		}
		if strings.HasPrefix(lower, "border") ||
			strings.Contains(lower, "border-left") ||
			strings.Contains(lower, "border-right") {
			continue
		}
		kept = append(kept, decl)
	}
	return strings.Join(kept, "; ")
}
