package wifi

import (
	"strconv"
	"strings"
)

// Credential describes the network the portal grants access to.
type Credential struct {
	SSID     string
	Password string
	AuthType string
	Hidden   bool
}

// Network returns the single network this portal hands out. The portal is
// deliberately single-tenant; there is no mechanism to configure another
// network at runtime.
func Network() Credential {
	return Credential{
		SSID:     "Airtel_Fiber",
		Password: "Tech@4230",
		AuthType: "WPA",
	}
}

// Payload renders the credential in the WIFI: config format that phone
// cameras and WiFi apps understand when scanned:
//
//	WIFI:T:<auth>;S:<ssid>;P:<password>;H:<hidden>;;
func (c Credential) Payload() string {
	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(c.AuthType)
	b.WriteString(";S:")
	b.WriteString(Escape(c.SSID))
	b.WriteString(";P:")
	b.WriteString(Escape(c.Password))
	b.WriteString(";H:")
	b.WriteString(strconv.FormatBool(c.Hidden))
	b.WriteString(";;")
	return b.String()
}

// Escape backslash-escapes the characters the WiFi QR convention reserves.
// The fixed network constants never contain any of them, but scanners reject
// unescaped values, so anything interpolated into a payload goes through here.
func Escape(s string) string {
	if !strings.ContainsAny(s, `\;,"`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\', ';', ',', '"':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
