package ui

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	namePolicyOnce sync.Once
	namePolicy     *bluemonday.Policy
)

// SanitizeName strips any markup from the visitor-supplied name before it is
// rendered back. The templates escape output anyway; stripping keeps pasted
// tags from showing up as literal angle-bracket noise on the page.
func SanitizeName(raw string) string {
	namePolicyOnce.Do(func() {
		namePolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(namePolicy.Sanitize(raw))
}
