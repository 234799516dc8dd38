package services

import (
	"net/url"
	"regexp"
	"strings"
)

const qrCodesDir = "/qrcodes/"

// ParseCardQR extracts the login id from a scanned card QR payload of the
// form {s3BaseURL}/qrcodes/{loginId}.png. The payload may carry text around
// the URL.
func ParseCardQR(s3BaseURL, payload string) (string, bool) {
	base := strings.TrimRight(s3BaseURL, "/")
	if base == "" {
		return "", false
	}

	re, err := regexp.Compile(regexp.QuoteMeta(base+qrCodesDir) + `([A-Za-z0-9_]+)\.png`)
	if err != nil {
		return "", false
	}

	m := re.FindStringSubmatch(payload)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// CardQRURL is the inverse of ParseCardQR.
func CardQRURL(s3BaseURL, loginID string) string {
	return strings.TrimRight(s3BaseURL, "/") + qrCodesDir + url.PathEscape(loginID) + ".png"
}
