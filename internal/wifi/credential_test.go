package wifi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkPayload(t *testing.T) {
	assert.Equal(t, "WIFI:T:WPA;S:Airtel_Fiber;P:Tech@4230;H:false;;", Network().Payload())
}

func TestPayloadHiddenNetwork(t *testing.T) {
	c := Credential{SSID: "backroom", Password: "hunter2", AuthType: "WPA", Hidden: true}
	assert.Equal(t, `WIFI:T:WPA;S:backroom;P:hunter2;H:true;;`, c.Payload())
}

func TestPayloadEscapesReservedCharacters(t *testing.T) {
	c := Credential{SSID: `cafe;guest`, Password: `a,b\c"d`, AuthType: "WPA"}
	assert.Equal(t, `WIFI:T:WPA;S:cafe\;guest;P:a\,b\\c\"d;H:false;;`, c.Payload())
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"plain", "plain"},
		{"", ""},
		{`semi;colon`, `semi\;colon`},
		{`back\slash`, `back\\slash`},
		{`comma,quote"`, `comma\,quote\"`},
		{"Tech@4230", "Tech@4230"}, // @ and : need no escape
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, Escape(tt.in), "input %q", tt.in)
	}
}
