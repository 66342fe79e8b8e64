// Package fixtures loads the demo data the showcase feeds its widgets. A
// fixtures file is YAML; unknown keys are rejected, and uniqueness of
// option values, tab values and column keys is checked here rather than
// inside the widgets.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mayura-ui/mayura/internal/config"
	"github.com/mayura-ui/mayura/internal/errors"
)

//go:embed default.yml
var defaultYAML []byte

// DefaultPageSize is used when neither the fixtures nor the caller set a
// page size.
const DefaultPageSize = 5

// Fixtures is the demo data for every showcased widget.
type Fixtures struct {
	PageSize int             `yaml:"page_size" validate:"min=0,max=1000"`
	Select   SelectFixture   `yaml:"select"`
	Dropdown DropdownFixture `yaml:"dropdown"`
	Table    TableFixture    `yaml:"table"`
	Tabs     []TabFixture    `yaml:"tabs" validate:"min=1,unique=Value,dive"`
	Modal    ModalFixture    `yaml:"modal"`
	Tooltip  TooltipFixture  `yaml:"tooltip"`
}

type OptionFixture struct {
	Label    string `yaml:"label" validate:"required"`
	Value    string `yaml:"value" validate:"required"`
	Disabled bool   `yaml:"disabled"`
}

type SelectFixture struct {
	Placeholder string          `yaml:"placeholder"`
	Multiple    bool            `yaml:"multiple"`
	Searchable  bool            `yaml:"searchable"`
	Options     []OptionFixture `yaml:"options" validate:"min=1,unique=Value,dive"`
	Value       []string        `yaml:"value"`
}

type MenuFixture struct {
	Label    string        `yaml:"label" validate:"required_unless=Divider true"`
	// Value is one segment of a menu path, so it may not contain "/".
	Value    string        `yaml:"value" validate:"required_unless=Divider true,excludes=/"`
	Disabled bool          `yaml:"disabled"`
	Divider  bool          `yaml:"divider"`
	Danger   bool          `yaml:"danger"`
	Children []MenuFixture `yaml:"children" validate:"dive"`
}

type DropdownFixture struct {
	Trigger       string        `yaml:"trigger" validate:"required"`
	Position      string        `yaml:"position" validate:"omitempty,oneof=bottom-left bottom-right top-left top-right"`
	CloseOnSelect *bool         `yaml:"close_on_select"`
	Items         []MenuFixture `yaml:"items" validate:"min=1,dive"`
}

type ColumnFixture struct {
	Key      string `yaml:"key" validate:"required"`
	Label    string `yaml:"label"`
	Sortable bool   `yaml:"sortable"`
	Width    string `yaml:"width"`
}

type TableFixture struct {
	Columns    []ColumnFixture  `yaml:"columns" validate:"min=1,unique=Key,dive"`
	Rows       []map[string]any `yaml:"rows"`
	Selectable bool             `yaml:"selectable"`
	// RowKey names the row field that identifies a row. It need not be a
	// displayed column. Empty keys rows by position.
	RowKey string `yaml:"row_key"`
}

type TabFixture struct {
	Label    string `yaml:"label" validate:"required"`
	Value    string `yaml:"value" validate:"required"`
	Disabled bool   `yaml:"disabled"`
	Content  string `yaml:"content"`
}

type ModalFixture struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body"`
	Size  string `yaml:"size" validate:"omitempty,oneof=sm md lg xl full"`
}

type TooltipFixture struct {
	Trigger  string `yaml:"trigger" validate:"required"`
	Content  string `yaml:"content" validate:"required"`
	Position string `yaml:"position" validate:"omitempty,oneof=top bottom left right"`
	DelayMS  int    `yaml:"delay_ms" validate:"min=0,max=10000"`
}

// Default returns the built-in demo data.
func Default() *Fixtures {
	f, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("fixtures: built-in data is invalid: %v", err))
	}
	return f
}

// Load reads and validates the fixtures file at path.
func Load(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError(errors.ErrCodeFileNotFound, "fixtures file not found: "+path)
		}
		return nil, errors.NewIOError(errors.ErrCodeFixturesRead, "read fixtures "+path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates YAML fixtures.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, &errors.UIError{
			Type:    errors.ErrorTypeValidation,
			Code:    errors.ErrCodeFixturesInvalid,
			Message: "malformed fixtures",
			Cause:   err,
		}
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks struct rules and the cross references between sections.
func (f *Fixtures) Validate() error {
	var ve errors.ValidationErrors
	config.CollectFieldErrors(&ve, config.GetValidator().Struct(f))

	for _, v := range f.Select.Value {
		if !f.hasOption(v) {
			ve.Add("select.value", v, "is not one of the options")
		}
	}
	if !f.Select.Multiple && len(f.Select.Value) > 1 {
		ve.Add("select.value", f.Select.Value, "single select takes at most one value")
	}

	if f.Table.RowKey != "" {
		seen := make(map[string]bool, len(f.Table.Rows))
		for i, row := range f.Table.Rows {
			field := fmt.Sprintf("table.rows[%d].%s", i, f.Table.RowKey)
			v, ok := row[f.Table.RowKey]
			if !ok {
				ve.Add(field, nil, "is required by row_key")
				continue
			}
			k := fmt.Sprint(v)
			if seen[k] {
				ve.Add(field, k, "duplicates a row key")
			}
			seen[k] = true
		}
	}

	return ve.Err(errors.ErrCodeFixturesInvalid)
}

// RowsPerPage returns the table page size: page_size when the file sets one,
// then fallback, then DefaultPageSize.
func (f *Fixtures) RowsPerPage(fallback int) int {
	switch {
	case f.PageSize > 0:
		return f.PageSize
	case fallback > 0:
		return fallback
	default:
		return DefaultPageSize
	}
}

func (f *Fixtures) hasOption(v string) bool {
	for _, o := range f.Select.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}
