package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// VisibleText approximates innerText: text of rendered elements only, with
// block elements on their own lines and runs of whitespace collapsed.
func VisibleText(sel *goquery.Selection) string {
	var w textWriter
	for _, n := range sel.Nodes {
		w.collect(n, false)
	}

	return normalizeWhitespace(w.b.String())
}

type textWriter struct {
	b       strings.Builder
	pending int // newlines owed before the next text
	started bool
}

func (w *textWriter) breakLines(n int) {
	if n > w.pending {
		w.pending = n
	}
}

func (w *textWriter) write(s string) {
	if strings.TrimSpace(s) == "" {
		if w.started && w.pending == 0 {
			w.b.WriteByte(' ')
		}
		return
	}

	if w.started && w.pending > 0 {
		w.b.WriteString(strings.Repeat("\n", w.pending))
	}
	w.pending = 0
	w.started = true
	w.b.WriteString(s)
}

func (w *textWriter) collect(n *html.Node, inPre bool) {
	name := ""
	if n.Type == html.ElementNode {
		if isHidden(n) {
			return
		}
		name = strings.ToLower(n.Data)
		switch name {
		case "script", "style", "noscript", "template", "head", "iframe":
			return
		case "pre", "textarea":
			inPre = true
		case "br":
			w.pending++
		}
		if lines := blockLines(name); lines > 0 {
			w.breakLines(1)
		}
	}

	if n.Type == html.TextNode {
		data := n.Data
		if !inPre {
			data = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(data)
		}
		w.write(data)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.collect(c, inPre)
	}

	switch name {
	case "":
	case "td", "th":
		w.write(" ")
	default:
		w.breakLines(blockLines(name))
	}
}

// blockLines is the number of line breaks around a block element:
// 2 leaves a blank line, 0 means inline.
func blockLines(name string) int {
	switch name {
	case "p", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "blockquote":
		return 2
	case "div", "section", "article", "header", "footer", "main", "aside", "nav",
		"li", "ul", "ol", "dl", "dt", "dd", "tr", "table", "figure", "figcaption", "form":
		return 1
	}

	return 0
}

func isHidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "hidden":
			return true
		case "style":
			style := strings.ReplaceAll(strings.ToLower(attr.Val), " ", "")
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return true
			}
		}
	}

	return false
}

func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		collapsed := strings.Join(strings.Fields(line), " ")
		if collapsed == "" {
			// keep at most one blank line
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, collapsed)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
