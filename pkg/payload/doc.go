// Package payload builds the canonical text strings that QR readers
// interpret: raw links and text, mailto and sms URIs, WIFI join strings,
// and vCard 3.0 contact blocks.
//
// The package is pure: Encode performs no I/O and no validation of field
// contents. Callers collect and validate fields for the active
// ContentType, then pass the matching Content struct.
//
// # Usage
//
//	import "github.com/ahoikapptn/qrkit/pkg/payload"
//
//	s, err := payload.Encode(payload.WiFi{
//		SSID:       "Home",
//		Password:   "secret1",
//		Encryption: payload.EncryptionWPA,
//	})
//	// s == "WIFI:T:WPA;S:Home;P:secret1;;"
//
// # Known limitation
//
// Reserved delimiters (';', ':', '\') inside Wi-Fi and contact fields are
// not escaped, so values containing them can produce payloads some readers
// misparse.
package payload
