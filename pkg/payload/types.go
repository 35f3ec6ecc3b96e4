package payload

// ContentType identifies the kind of content a QR payload carries and
// determines which field set is required to build it.
type ContentType string

const (
	TypeURL   ContentType = "url"
	TypeText  ContentType = "text"
	TypeEmail ContentType = "email"
	TypeSMS   ContentType = "sms"
	TypeWiFi  ContentType = "wifi"
	TypeVCard ContentType = "vcard"
)

// Encryption is the Wi-Fi authentication mode advertised in a WIFI payload.
type Encryption string

const (
	EncryptionWPA  Encryption = "WPA"
	EncryptionWEP  Encryption = "WEP"
	EncryptionNone Encryption = "nopass"
)

// Content is the closed set of field structs accepted by Encode. Each
// implementation corresponds to exactly one ContentType; the interface is
// sealed so callers cannot pass arbitrary shapes.
type Content interface {
	Type() ContentType
	sealed()
}

// URL wraps a link that is emitted verbatim.
type URL struct {
	URL string
}

// Text wraps free text that is emitted verbatim.
type Text struct {
	Text string
}

// Email describes a mailto payload. Subject and body are percent-encoded
// during encoding; the address is not.
type Email struct {
	Address string
	Subject string
	Body    string
}

// SMS describes an sms: payload with a prefilled message.
type SMS struct {
	Phone   string
	Message string
}

// WiFi describes network credentials in the WIFI: join format.
type WiFi struct {
	SSID       string
	Password   string
	Encryption Encryption
}

// VCard describes a contact card emitted as a vCard 3.0 block.
type VCard struct {
	FirstName    string
	LastName     string
	Phone        string
	Email        string
	Organization string
	URL          string
}

func (URL) Type() ContentType   { return TypeURL }
func (Text) Type() ContentType  { return TypeText }
func (Email) Type() ContentType { return TypeEmail }
func (SMS) Type() ContentType   { return TypeSMS }
func (WiFi) Type() ContentType  { return TypeWiFi }
func (VCard) Type() ContentType { return TypeVCard }

func (URL) sealed()   {}
func (Text) sealed()  {}
func (Email) sealed() {}
func (SMS) sealed()   {}
func (WiFi) sealed()  {}
func (VCard) sealed() {}
