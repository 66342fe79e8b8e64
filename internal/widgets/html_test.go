package widgets

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

func TestClasses(t *testing.T) {
	got := Classes("a", templ.KV("b", true), templ.KV("c", false), "d")
	assert.Equal(t, "a b d", got)
}

func TestPick(t *testing.T) {
	table := map[Size]string{SizeSmall: "small", SizeMedium: "medium"}
	assert.Equal(t, "small", Pick(table, SizeSmall, SizeMedium))
	assert.Equal(t, "medium", Pick(table, Size("xl"), SizeMedium))
}

func TestWriterEscapes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Raw("<p")
	w.Attr("title", `a "b" <c>`)
	w.AttrIf(true, "disabled")
	w.AttrIf(false, "hidden")
	w.Raw(">")
	w.Text("1 < 2 & 3")
	w.Component(context.Background(), Text("<x>"))
	w.Component(context.Background(), nil)
	w.Raw("</p>")

	assert.NoError(t, w.Err())
	assert.Equal(t, `<p title="a &#34;b&#34; &lt;c&gt;" disabled>1 &lt; 2 &amp; 3&lt;x&gt;</p>`, buf.String())
}

type failingWriter struct{ writes int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errors.New("closed")
}

var _ io.Writer = (*failingWriter)(nil)

func TestWriterLatchesFirstError(t *testing.T) {
	fw := &failingWriter{}
	w := NewWriter(fw)
	w.Raw("a")
	w.Raw("b")
	w.Text("c")

	assert.EqualError(t, w.Err(), "closed")
	assert.Equal(t, 1, fw.writes)
}
