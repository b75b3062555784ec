package resume

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PlainText converts HTML pasted from a web page or rich text editor into
// plain text. Input without markup, including text that merely contains
// angle brackets such as "vector<int>", is returned unchanged.
func PlainText(s string) string {
	if !hasMarkup(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithNodes(textNode("\n"))
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		li.PrependNodes(textNode("- "))
		li.AfterNodes(textNode("\n"))
	})
	doc.Find("p, div, h1, h2, h3, h4, ul, ol").Each(func(_ int, s *goquery.Selection) {
		s.AfterNodes(textNode("\n"))
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// markupTags are the elements rich text editors emit. Only complete tags
// naming one of them mark the input as HTML.
var markupTags = map[atom.Atom]bool{
	atom.P: true, atom.Br: true, atom.Div: true, atom.Span: true,
	atom.Ul: true, atom.Ol: true, atom.Li: true,
	atom.B: true, atom.Strong: true, atom.I: true, atom.Em: true, atom.U: true,
	atom.A: true, atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true,
	atom.Script: true, atom.Style: true,
}

func hasMarkup(s string) bool {
	if !strings.Contains(s, "<") {
		return false
	}
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			if !strings.HasSuffix(string(z.Raw()), ">") {
				continue
			}
			if markupTags[z.Token().DataAtom] {
				return true
			}
		}
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func filled(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}

func joinNonEmpty(parts ...string) string {
	return strings.Join(compact(parts), " • ")
}

func compact(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
