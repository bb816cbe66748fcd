// Package returnurl carries a redirect URL through the payment
// notification callback as a URL-safe token, and marks the URL as
// successful once the payment is confirmed.
package returnurl

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/errs"
)

const (
	successKey   = "success"
	successValue = "1"
)

var (
	toURLSafe   = strings.NewReplacer("+", "-", "/", "_")
	fromURLSafe = strings.NewReplacer("-", "+", "_", "/")
)

// Encode uses the standard base64 alphabet with "+" and "/" swapped for
// "-" and "_". Padding is kept.
func Encode(url string) string {
	return toURLSafe.Replace(base64.StdEncoding.EncodeToString([]byte(url)))
}

// Decode reverses Encode. Tokens whose "=" padding was dropped on the way
// are re-padded before decoding.
func Decode(token string) (string, error) {
	std := fromURLSafe.Replace(token)
	if rem := len(std) % 4; rem != 0 {
		std += strings.Repeat("=", 4-rem)
	}

	decoded, err := base64.StdEncoding.DecodeString(std)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrInvalidReturnURL, err)
	}

	return string(decoded), nil
}

// UpsertSuccessFlag returns url with exactly one success=1 query
// parameter. Any existing success parameter is dropped wherever it sits;
// the remaining parameters keep their order and the fragment stays last.
func UpsertSuccessFlag(url string) string {
	base, fragment, hasFragment := strings.Cut(url, "#")
	path, query, _ := strings.Cut(base, "?")

	params := make([]string, 0, strings.Count(query, "&")+2)
	for _, param := range strings.Split(query, "&") {
		if param == "" || isSuccessParam(param) {
			continue
		}
		params = append(params, param)
	}
	params = append(params, successKey+"="+successValue)

	result := path + "?" + strings.Join(params, "&")
	if hasFragment {
		result += "#" + fragment
	}

	return result
}

// isSuccessParam matches on the whole parameter name, so "unsuccessful=0"
// or "success_page=2" are left alone.
func isSuccessParam(param string) bool {
	name, _, _ := strings.Cut(param, "=")
	return strings.EqualFold(name, successKey)
}

// IsWebURL reports whether raw is an absolute http or https URL. Anything
// else, javascript: and data: included, must not reach a redirect.
func IsWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https")
}
