package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"Asha Rao", "Asha Rao"},
		{"  Asha Rao  ", "Asha Rao"},
		{"<b>Asha</b>", "Asha"},
		{`<script>alert(1)</script>Asha`, "Asha"},
		{"<img src=x onerror=alert(1)>", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, SanitizeName(tt.in), "input %q", tt.in)
	}
}
