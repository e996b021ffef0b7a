package importer

import (
	"io"
	"strings"

	"github.com/nikbrunner/radiogrid/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLGroup reads radio options from an HTML document. Both
// <input type="radio"> elements (labelled by <label for>, a wrapping
// <label>, or their value) and <select><option> lists are recognised.
// The group name comes from the first name attribute seen, the header
// from the first <legend>.
func ParseHTMLGroup(r io.Reader) (*model.Group, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	group := model.NewGroup("")
	labelsFor := collectLabels(doc)

	var parse func(n *html.Node, label *html.Node, disabled bool)
	parse = func(n *html.Node, label *html.Node, disabled bool) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "fieldset", "optgroup":
				disabled = disabled || hasAttr(n, "disabled")

			case "legend":
				if group.Header == "" {
					group.Header = getTextContent(n)
				}
				return

			case "label":
				label = n

			case "input":
				if !strings.EqualFold(getAttr(n, "type"), "radio") {
					return
				}
				setName(group, getAttr(n, "name"))
				text := radioLabel(n, label, labelsFor)
				if text == "" {
					return
				}
				group.Options = append(group.Options, model.NewOption(model.NewOptionParams{
					Label:    text,
					Disabled: disabled || hasAttr(n, "disabled"),
				}))
				return

			case "select":
				setName(group, getAttr(n, "name"))
				disabled = disabled || hasAttr(n, "disabled")

			case "option":
				text := getTextContent(n)
				if text == "" {
					text = getAttr(n, "value")
				}
				if text != "" {
					group.Options = append(group.Options, model.NewOption(model.NewOptionParams{
						Label:    text,
						Disabled: disabled || hasAttr(n, "disabled"),
					}))
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c, label, disabled)
		}
	}

	parse(doc, nil, false)
	return group, nil
}

func setName(group *model.Group, name string) {
	if group.Name == "" && name != "" {
		group.Name = name
	}
}

// radioLabel picks the visible text for a radio input.
func radioLabel(input, wrapping *html.Node, labelsFor map[string]string) string {
	if id := getAttr(input, "id"); id != "" {
		if text, ok := labelsFor[id]; ok && text != "" {
			return text
		}
	}
	if wrapping != nil {
		if text := getTextContent(wrapping); text != "" {
			return text
		}
	}
	return getAttr(input, "value")
}

// collectLabels maps <label for> targets to their text.
func collectLabels(doc *html.Node) map[string]string {
	labels := make(map[string]string)
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "label") {
			if target := getAttr(n, "for"); target != "" {
				labels[target] = getTextContent(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return labels
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(text.String()), " ")
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}

// hasAttr reports whether a boolean attribute such as disabled is present.
func hasAttr(n *html.Node, key string) bool {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return true
		}
	}
	return false
}
