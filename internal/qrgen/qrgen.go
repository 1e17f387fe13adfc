// Package qrgen renders QR code images from links.
package qrgen

import (
	"regexp"
	"strings"

	"github.com/gosimple/slug"
	qrcode "github.com/skip2/go-qrcode"

	"randomtools/internal/common"
)

var linkPrefixRE = regexp.MustCompile(`^(https?://)?(www\.)?`)

// Filename derives a PNG filename from a link: protocol and www are
// dropped, the rest is slugified and capped at 50 characters.
func Filename(link string) string {
	text := linkPrefixRE.ReplaceAllString(link, "")
	s := slug.Make(text)
	if len(s) > 50 {
		s = strings.TrimRight(s[:50], "-")
	}
	if s == "" {
		s = "qr-code"
	}
	return s + ".png"
}

// Generate writes a 512x512 QR code PNG encoding the link.
func Generate(link, output string) error {
	if err := qrcode.WriteFile(link, qrcode.Medium, 512, output); err != nil {
		return common.WrapError(err, common.ErrorTypeInternal, "qr_encode_failed", "failed to generate QR code")
	}
	return nil
}
