package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText returns the concatenation of every text node under `node`, untouched.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// StrippedStrings returns every text fragment under the selection trimmed of
// surrounding whitespace, empty fragments are dropped. Order is document order.
func StrippedStrings(sel *goquery.Selection) []string {
	out := []string{}
	for _, n := range sel.Nodes {
		strippedStringsRecursive(n, &out)
	}
	return out
}

func strippedStringsRecursive(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		text := strings.TrimSpace(node.Data)
		if text != "" {
			*out = append(*out, text)
		}
		return
	}
	// script and style contents are not text as far as the page is concerned
	if node.Type == html.ElementNode && (node.Data == "script" || node.Data == "style") {
		return
	}
	child := node.FirstChild
	for child != nil {
		strippedStringsRecursive(child, out)
		child = child.NextSibling
	}
}

// StrippedText joins StrippedStrings without a separator, it is the text of a node
// with the whitespace around each fragment removed.
func StrippedText(sel *goquery.Selection) string {
	return strings.Join(StrippedStrings(sel), "")
}
