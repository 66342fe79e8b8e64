package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEnglish(t *testing.T) {
	c := Default()
	assert.Equal(t, "en", c.Locale())
	assert.Equal(t, "No options found", c.T(SelectNoOptions))
	assert.Equal(t, "Page 3", c.TData(PaginationPage, map[string]any{"Page": 3}))
	assert.Equal(t, "Showing 11 to 20 of 95 results",
		c.TData(PaginationInfo, map[string]any{"Start": 11, "End": 20, "Total": 95}))
}

func TestCatalogSpanish(t *testing.T) {
	c, err := New("es")
	require.NoError(t, err)

	assert.Equal(t, "es", c.Locale())
	assert.Equal(t, "No hay datos disponibles", c.T(TableNoData))
	assert.Equal(t, "Página 2", c.TData(PaginationPage, map[string]any{"Page": 2}))
}

func TestCatalogFallsBackToEnglish(t *testing.T) {
	c, err := New("fr")
	require.NoError(t, err)
	assert.Equal(t, "No data available", c.T(TableNoData))

	unknown := &Message{ID: "NotInAnyFile", Other: "Fallback text"}
	assert.Equal(t, "Fallback text", c.T(unknown))
}

func TestNewRejectsBadLocale(t *testing.T) {
	_, err := New("not a locale!")
	assert.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	es, err := New("es")
	require.NoError(t, err)

	ctx := WithCatalog(context.Background(), es)
	assert.Same(t, es, FromContext(ctx))
	assert.Same(t, Default(), FromContext(context.Background()))
}
