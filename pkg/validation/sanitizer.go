package validation

import "github.com/microcosm-cc/bluemonday"

// Sanitizer cleans markup produced by the analysis service before it is
// handed to the browser.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	return &Sanitizer{policy: policy}
}

func (s *Sanitizer) SanitizeHTML(fragment string) string {
	if fragment == "" {
		return ""
	}
	return s.policy.Sanitize(fragment)
}
