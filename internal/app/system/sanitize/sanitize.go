// Package sanitize strips unsafe markup from user-supplied free text before
// it is stored. Descriptions and notification messages are rendered by
// browser clients, so scripts and event handlers must never survive intake.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	strict *bluemonday.Policy
	ugc    *bluemonday.Policy
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	once.Do(func() {
		strict = bluemonday.StrictPolicy()
		ugc = bluemonday.UGCPolicy()
	})
	return strict, ugc
}

// Text strips ALL markup, leaving plain text. Used for names, titles,
// locations, messages, and other single-line fields.
func Text(s string) string {
	p, _ := policies()
	return strings.TrimSpace(p.Sanitize(s))
}

// Description keeps basic formatting markup (paragraphs, emphasis, lists,
// safe links) but removes scripts and event handlers. Used for project and
// NGO descriptions.
func Description(s string) string {
	_, p := policies()
	return strings.TrimSpace(p.Sanitize(s))
}
