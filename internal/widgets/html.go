// Package widgets holds the pieces shared by every widget renderer: class
// composition, size and variant names, and an error-latching HTML writer.
//
// The widgets themselves live in subpackages. Each one is a controlled
// component: a pure Update reducer over caller-owned props and local state,
// plus a Render function that returns a templ.Component.
package widgets

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Size is the presentation size shared by the widgets.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Variant names a visual variant. Each widget documents the values it knows;
// unknown variants render with the widget's default look.
type Variant string

// Classes joins class names the way templ does for class attributes. Parts
// may be strings or templ.KV pairs guarded by a condition.
func Classes(parts ...any) string {
	return templ.Classes(parts...).String()
}

// Pick returns table[key] or table[fallback] when key is unknown.
func Pick[K comparable](table map[K]string, key, fallback K) string {
	if v, ok := table[key]; ok {
		return v
	}
	return table[fallback]
}

// Writer writes HTML and remembers the first error so renderers can write
// straight through and check once at the end.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (w *Writer) Raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

// Text writes s escaped for element content.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped.
func (w *Writer) Attr(name, value string) {
	w.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// AttrIf writes a boolean attribute when cond holds.
func (w *Writer) AttrIf(cond bool, name string) {
	if cond {
		w.Raw(" " + name)
	}
}

// Component renders c in place. Nil components are skipped.
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

// Text returns a component that renders s escaped.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
