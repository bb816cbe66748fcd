package renderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/returnurl"
)

// Renderer produces the interstitial page that sends the payer on to the
// next step. It never writes to a response itself.
type Renderer interface {
	RenderRedirect(url string) ([]byte, error)
}

var redirectTemplate = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta http-equiv="refresh" content="0;url={{.}}">
<title>Redirecting</title>
</head>
<body>
<script>window.location.replace({{.}});</script>
<p>If you are not redirected, <a href="{{.}}">continue here</a>.</p>
</body>
</html>
`))

type HTMLRenderer struct{}

func CreateHTMLRenderer() Renderer {
	return HTMLRenderer{}
}

// RenderRedirect refuses anything but absolute http(s) URLs; the meta
// refresh and script contexts do not filter URL schemes.
func (HTMLRenderer) RenderRedirect(url string) ([]byte, error) {
	if !returnurl.IsWebURL(url) {
		return nil, fmt.Errorf("%w: refusing to redirect to %q", errs.ErrInvalidReturnURL, url)
	}

	var buf bytes.Buffer
	if err := redirectTemplate.Execute(&buf, url); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
