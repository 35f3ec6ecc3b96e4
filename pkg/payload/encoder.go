package payload

import (
	"fmt"
	"strings"
)

// Encode builds the canonical payload string for the given content. It is
// pure and deterministic: identical inputs always yield identical output.
// Field values are taken as-is; validating their contents (phone format,
// URL scheme) is the caller's responsibility.
func Encode(c Content) (string, error) {
	switch v := c.(type) {
	case URL:
		return v.URL, nil
	case Text:
		return v.Text, nil
	case Email:
		return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
			v.Address, escapeComponent(v.Subject), escapeComponent(v.Body)), nil
	case SMS:
		return fmt.Sprintf("sms:%s?body=%s", v.Phone, escapeComponent(v.Message)), nil
	case WiFi:
		// Reserved characters inside SSID/password are not escaped; this
		// matches the join format most readers expect for plain values.
		return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", v.Encryption, v.SSID, v.Password), nil
	case VCard:
		return encodeVCard(v), nil
	default:
		return "", ErrUnsupportedContentType
	}
}

// encodeVCard emits a vCard 3.0 block. Line order is fixed for reader
// compatibility: BEGIN, VERSION, FN, N, TEL, EMAIL, ORG, URL, END.
func encodeVCard(v VCard) string {
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		fmt.Sprintf("FN:%s %s", v.FirstName, v.LastName),
		fmt.Sprintf("N:%s;%s;;;", v.LastName, v.FirstName),
		"TEL:" + v.Phone,
		"EMAIL:" + v.Email,
		"ORG:" + v.Organization,
		"URL:" + v.URL,
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}

// escapeComponent percent-encodes a URI component. Unreserved characters
// and the sub-delims !'()* stay literal, space becomes %20 (never +),
// everything else is escaped byte-wise.
func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteString(fmt.Sprintf("%%%02X", c))
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '!', '\'', '(', ')', '*':
		return true
	}
	return false
}
