package content

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LoadHTML scans markup in the site's data-attribute convention: elements
// carrying data-entry become entries (title from the first heading
// descendant, summary from the first paragraph), enclosing data-section
// elements group them, and elements carrying data-skill become selector
// controls labeled by their text content. Missing attributes degrade to
// empty values; only document-level rules (Validate) fail a load.
func LoadHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &Document{}
	var sections []*Section
	var ungrouped []Entry
	var firstH1 string

	var walk func(n *html.Node, section *Section)
	walk = func(n *html.Node, section *Section) {
		if n.Type == html.ElementNode {
			if n.DataAtom == atom.Title && doc.Name == "" {
				doc.Name = textContent(n)
			}
			if n.DataAtom == atom.H1 && firstH1 == "" {
				firstH1 = textContent(n)
			}

			switch {
			case hasAttr(n, "data-section"):
				sec := &Section{
					Kind:  strings.TrimSpace(attrValue(n, "data-section")),
					Title: headingText(n),
				}
				sections = append(sections, sec)
				for child := n.FirstChild; child != nil; child = child.NextSibling {
					walk(child, sec)
				}
				return
			case hasAttr(n, "data-entry"):
				entry := entryFromNode(n)
				if section != nil {
					section.Entries = append(section.Entries, entry)
				} else {
					ungrouped = append(ungrouped, entry)
				}
				return
			case hasAttr(n, "data-skill"):
				doc.Skills = append(doc.Skills, skillFromNode(n))
				return
			case hasAttr(n, "data-tagline") && doc.Tagline == "":
				doc.Tagline = textContent(n)
			case hasAttr(n, "data-motto") && doc.Motto == "":
				doc.Motto = textContent(n)
			case hasAttr(n, "data-title") && doc.Title == "":
				doc.Title = textContent(n)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, section)
		}
	}
	walk(root, nil)

	if doc.Name == "" {
		doc.Name = firstH1
	}
	for _, sec := range sections {
		doc.Sections = append(doc.Sections, *sec)
	}
	if len(ungrouped) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: "projects", Entries: ungrouped})
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func entryFromNode(n *html.Node) Entry {
	return Entry{
		ID:       strings.TrimSpace(attrValue(n, "data-entry")),
		Title:    headingText(n),
		Subtitle: strings.TrimSpace(attrValue(n, "data-subtitle")),
		Period:   strings.TrimSpace(attrValue(n, "data-period")),
		Summary:  paragraphText(n),
		Tags:     attrValue(n, "data-tags"),
	}
}

func skillFromNode(n *html.Node) Skill {
	return Skill{
		ID:    strings.TrimSpace(attrValue(n, "id")),
		Label: textContent(n),
		Tag:   attrValue(n, "data-skill"),
		Icon:  strings.TrimSpace(attrValue(n, "data-icon")),
	}
}

func hasAttr(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, name string) string {
	for _, attr := range n.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// textContent joins the text nodes under n with collapsed whitespace,
// skipping script and style subtrees.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(c *html.Node) {
		if c.Type == html.ElementNode && (c.DataAtom == atom.Script || c.DataAtom == atom.Style) {
			return
		}
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			sb.WriteString(" ")
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func headingText(n *html.Node) string {
	heading := findFirst(n, func(c *html.Node) bool {
		switch c.DataAtom {
		case atom.H1, atom.H2, atom.H3, atom.H4:
			return true
		}
		return false
	})
	if heading == nil {
		return ""
	}
	return textContent(heading)
}

func paragraphText(n *html.Node) string {
	paragraph := findFirst(n, func(c *html.Node) bool {
		return c.DataAtom == atom.P
	})
	if paragraph == nil {
		return ""
	}
	return textContent(paragraph)
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, match); found != nil {
			return found
		}
	}
	return nil
}
