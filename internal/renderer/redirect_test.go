package renderer

import (
	"testing"

	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLRenderer_RenderRedirect(t *testing.T) {
	page, err := CreateHTMLRenderer().RenderRedirect("https://x.org/thanks?a=1&success=1")
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, `<meta http-equiv="refresh"`)
	assert.Contains(t, html, `href="https://x.org/thanks?a=1&amp;success=1"`)
	assert.Contains(t, html, "window.location.replace(")
}

func TestHTMLRenderer_EscapesURL(t *testing.T) {
	page, err := CreateHTMLRenderer().RenderRedirect(`https://x.org/"><script>alert(1)</script>`)
	require.NoError(t, err)

	assert.NotContains(t, string(page), "<script>alert(1)</script>")
}

func TestHTMLRenderer_RejectsNonWebSchemes(t *testing.T) {
	for _, url := range []string{
		"javascript:alert(document.cookie)//?success=1",
		"data:text/html;base64,PHNjcmlwdD4=",
		"?success=1",
	} {
		page, err := CreateHTMLRenderer().RenderRedirect(url)
		assert.ErrorIs(t, err, errs.ErrInvalidReturnURL)
		assert.Nil(t, page)
	}
}
