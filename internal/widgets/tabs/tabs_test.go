package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/testutils"
	"github.com/mayura-ui/mayura/internal/widgets"
)

func items() []Item {
	return []Item{
		{Label: "Overview", Value: "overview", Content: widgets.Text("overview body")},
		{Label: "Billing", Value: "billing", Disabled: true, Content: widgets.Text("billing body")},
		{Label: "Settings", Value: "settings", Content: widgets.Text("settings body")},
	}
}

func TestInit(t *testing.T) {
	assert.Equal(t, "overview", Init(Props{Items: items()}).Active)
	assert.Equal(t, "settings", Init(Props{Items: items(), DefaultValue: "settings"}).Active)
	assert.Empty(t, Init(Props{}).Active)
}

func TestSelect(t *testing.T) {
	p := Props{Items: items()}
	s := Init(p)

	tests := []struct {
		name    string
		event   Event
		active  string
		changed bool
	}{
		{"other tab", Selected{Value: "settings"}, "settings", true},
		{"active tab", Selected{Value: "overview"}, "overview", false},
		{"disabled tab", Selected{Value: "billing"}, "overview", false},
		{"unknown tab", Selected{Value: "ghost"}, "overview", false},
		{"arrow right skips disabled", KeyPressed{Key: KeyRight}, "settings", true},
		{"arrow left wraps", KeyPressed{Key: KeyLeft}, "settings", true},
		{"end", KeyPressed{Key: KeyEnd}, "settings", true},
		{"home on first", KeyPressed{Key: KeyHome}, "overview", false},
		{"other key", KeyPressed{Key: "a"}, "overview", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, eff := Update(p, s, tt.event)
			assert.Equal(t, tt.active, next.Active)
			assert.Equal(t, tt.changed, eff.Changed)
		})
	}
}

func TestControllerAndRender(t *testing.T) {
	var got []string
	c := NewController(Props{Items: items(), Variant: VariantPills}, func(v string) { got = append(got, v) })
	c.Dispatch(Selected{Value: "settings"})
	c.Dispatch(Selected{Value: "settings"})
	assert.Equal(t, []string{"settings"}, got)

	markup := testutils.Render(t, c.Component())
	selected := testutils.Query(t, markup, testutils.HasAttr("aria-selected", "true"))
	require.Len(t, selected, 1)
	assert.Equal(t, "Settings", testutils.Text(selected[0]))

	panel := testutils.Query(t, markup, testutils.HasAttr("role", "tabpanel"))
	require.Len(t, panel, 1)
	assert.Equal(t, "settings body", testutils.Text(panel[0]))

	disabled := testutils.Query(t, markup, testutils.HasAttr("role", "tab"), testutils.HasAttr("disabled", ""))
	assert.Equal(t, []string{"Billing"}, testutils.Texts(disabled))
}
