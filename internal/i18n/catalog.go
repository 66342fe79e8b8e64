// Package i18n holds the message catalog for widget text.
//
// Widgets look the catalog up from the render context, so the same component
// tree renders in any supported locale. Every message carries its English
// default, which is used when a translation is missing.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Message is the go-i18n message type, re-exported so callers do not need to
// import go-i18n to declare messages.
type Message = goi18n.Message

// Widget messages.
var (
	SelectPlaceholder = &Message{ID: "SelectPlaceholder", Other: "Select option"}
	SelectSearch      = &Message{ID: "SelectSearch", Other: "Search..."}
	SelectNoOptions   = &Message{ID: "SelectNoOptions", Other: "No options found"}
	SelectRemove      = &Message{ID: "SelectRemove", Other: "Remove {{.Label}}"}

	TableNoData    = &Message{ID: "TableNoData", Other: "No data available"}
	TableSelectAll = &Message{ID: "TableSelectAll", Other: "Select all rows"}
	TableSelectRow = &Message{ID: "TableSelectRow", Other: "Select row {{.Row}}"}

	PaginationLabel    = &Message{ID: "PaginationLabel", Other: "Pagination"}
	PaginationFirst    = &Message{ID: "PaginationFirst", Other: "First page"}
	PaginationPrevious = &Message{ID: "PaginationPrevious", Other: "Previous page"}
	PaginationNext     = &Message{ID: "PaginationNext", Other: "Next page"}
	PaginationLast     = &Message{ID: "PaginationLast", Other: "Last page"}
	PaginationPage     = &Message{ID: "PaginationPage", Other: "Page {{.Page}}"}
	PaginationInfo     = &Message{ID: "PaginationInfo", Other: "Showing {{.Start}} to {{.End}} of {{.Total}} results"}

	ModalClose = &Message{ID: "ModalClose", Other: "Close"}
)

// Showcase messages.
var (
	ShowcaseSelected     = &Message{ID: "ShowcaseSelected", Other: "Selected: {{.Value}}"}
	ShowcaseNothing      = &Message{ID: "ShowcaseNothing", Other: "Nothing selected"}
	ShowcaseLastAction   = &Message{ID: "ShowcaseLastAction", Other: "Last action: {{.Action}}"}
	ShowcaseRowsSelected = &Message{ID: "ShowcaseRowsSelected", Other: "{{.Count}} rows selected"}
	ShowcaseOpenDialog   = &Message{ID: "ShowcaseOpenDialog", Other: "Open dialog"}
	ShowcaseDialogClosed = &Message{ID: "ShowcaseDialogClosed", Other: "Dialog closed {{.Count}} times"}
)

// Catalog resolves messages for one locale.
type Catalog struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

var english = mustNew("en")

func mustNew(locale string) *Catalog {
	c, err := New(locale)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog for locale, falling back to English.
func New(locale string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return &Catalog{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

// Default returns the English catalog.
func Default() *Catalog {
	return english
}

// Locale returns the locale the catalog was built for.
func (c *Catalog) Locale() string {
	return c.tag.String()
}

// T localizes a message without template data.
func (c *Catalog) T(msg *Message) string {
	return c.TData(msg, nil)
}

// TData localizes a message with template data. Failures fall back to the
// untemplated default text.
func (c *Catalog) TData(msg *Message, data map[string]any) string {
	out, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
	if err != nil && out == "" {
		return msg.Other
	}
	return out
}

type contextKey struct{}

// WithCatalog returns a context carrying c for renderers.
func WithCatalog(ctx context.Context, c *Catalog) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// FromContext returns the catalog stored in ctx, or the English catalog.
func FromContext(ctx context.Context) *Catalog {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*Catalog); ok && c != nil {
			return c
		}
	}
	return english
}
