package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "success.html", "submissions.html", "error.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestTemplates_RendersNotices(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html", map[string]interface{}{
		"title": "Kontaktní formulář",
		"messages": []struct{ Category, Text string }{
			{Category: "error", Text: "Neplatná emailová adresa."},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `class="notice notice-error"`)
	assert.Contains(t, buf.String(), "Neplatná emailová adresa.")
	assert.Contains(t, buf.String(), `name="psc"`)
}
