// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scrape

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Extract parses body as HTML and returns every <table><tbody><tr> row matching tpl, in
// document order. Rows and tables of any other shape are skipped.
func Extract(body string, tpl RowTemplate) ([]Row, error) {
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []Row
	var walkErr error
	walk(doc, func(node *html.Node) bool {
		if node.Type != html.ElementNode || node.DataAtom != atom.Table {
			return true
		}
		for tbody := range elementChildren(node, atom.Tbody) {
			for tr := range elementChildren(tbody, atom.Tr) {
				row, ok, err := tpl.match(tr)
				if err != nil {
					walkErr = err
					return false
				}
				if ok {
					rows = append(rows, row)
				}
			}
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return rows, nil
}

// match extracts a Row from tr if its cells fit the template.
func (t RowTemplate) match(tr *html.Node) (Row, bool, error) {
	var cells []*html.Node
	for child := tr.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		if child.DataAtom != atom.Td {
			return nil, false, nil
		}
		cells = append(cells, child)
	}
	if len(cells) != len(t.Fields) {
		return nil, false, nil
	}

	row := make(Row, len(t.Fields))
	for i, field := range t.Fields {
		node := cells[i]
		if field.Anchor {
			node = firstElementChild(node, atom.A)
			if node == nil {
				return nil, false, nil
			}
		}
		if !field.Markup {
			row[field.Name] = textContent(node)
			continue
		}
		markup, err := innerHTML(node)
		if err != nil {
			return nil, false, fmt.Errorf("failed to render %s cell: %w", field.Name, err)
		}
		row[field.Name] = strings.TrimSpace(markup)
	}
	return row, true, nil
}

// walk visits node and its descendants depth-first until fn returns false.
func walk(node *html.Node, fn func(*html.Node) bool) bool {
	if !fn(node) {
		return false
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if !walk(child, fn) {
			return false
		}
	}
	return true
}

// elementChildren yields the direct element children of node with the given tag.
func elementChildren(node *html.Node, tag atom.Atom) func(func(*html.Node) bool) {
	return func(yield func(*html.Node) bool) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && child.DataAtom == tag {
				if !yield(child) {
					return
				}
			}
		}
	}
}

func firstElementChild(node *html.Node, tag atom.Atom) *html.Node {
	for child := range elementChildren(node, tag) {
		return child
	}
	return nil
}

// textContent returns the text of node and its descendants with whitespace runs collapsed.
func textContent(node *html.Node) string {
	var sb strings.Builder
	walk(node, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return collapseSpace(sb.String())
}

func innerHTML(node *html.Node) (string, error) {
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&sb, child); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
