// Package testutils provides shared helpers for tests: rendering widgets to
// HTML, querying the parsed markup, and laying out temporary fixture files.
package testutils

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// Render renders c with a background context and returns the markup.
func Render(t testing.TB, c templ.Component) string {
	t.Helper()
	return RenderContext(t, context.Background(), c)
}

// RenderContext renders c with ctx and returns the markup.
func RenderContext(t testing.TB, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

// Parse parses an HTML fragment into a document tree.
func Parse(t testing.TB, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

// Matcher selects nodes.
type Matcher func(n *html.Node) bool

// Tag matches elements by tag name.
func Tag(name string) Matcher {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == name
	}
}

// HasAttr matches elements carrying an attribute with the given value. An
// empty value matches any value.
func HasAttr(name, value string) Matcher {
	return func(n *html.Node) bool {
		v, ok := Attr(n, name)
		return ok && (value == "" || v == value)
	}
}

// All matches nodes satisfying every matcher.
func All(ms ...Matcher) Matcher {
	return func(n *html.Node) bool {
		for _, m := range ms {
			if !m(n) {
				return false
			}
		}
		return true
	}
}

// Find returns every node under root that matches m, in document order.
func Find(root *html.Node, m Matcher) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if m(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// Query renders nothing; it parses markup and returns the matching nodes.
func Query(t testing.TB, markup string, ms ...Matcher) []*html.Node {
	t.Helper()
	return Find(Parse(t, markup), All(ms...))
}

// Attr returns the value of attribute name on n.
func Attr(n *html.Node, name string) (string, bool) {
	if n == nil || n.Type != html.ElementNode {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns the concatenated, whitespace-trimmed text under n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// Texts returns Text for each node.
func Texts(nodes []*html.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = Text(n)
	}
	return out
}

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Eventually waits up to timeout for cond to hold, polling every 10ms.
func Eventually(t testing.TB, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}
