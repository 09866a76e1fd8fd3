package table

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ReadHTML reads the first <table> of an HTML document, as produced by
// spreadsheet "save as web page" exports. The first row is the header.
func ReadHTML(r io.Reader) (*Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tbl := findFirst(doc, atom.Table)
	if tbl == nil {
		return nil, fmt.Errorf("read html: no <table> element")
	}

	var rows [][]string
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			rows = append(rows, rowCells(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(tbl)

	if len(rows) == 0 {
		return nil, fmt.Errorf("read html: table has no rows")
	}

	t := New(trimAll(rows[0])...)
	for _, row := range rows[1:] {
		t.Append(row...)
	}
	return t, nil
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Td || c.DataAtom == atom.Th) {
			cells = append(cells, strings.Join(strings.Fields(nodeText(c)), " "))
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Br {
			buf.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(n)
	return buf.String()
}
