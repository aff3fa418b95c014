package governance

import "regexp"

// Placeholder tokens substituted for detected PII. The placeholders contain
// no redactable substrings themselves, which makes redaction idempotent.
const (
	RedactedEmail = "[REDACTED_EMAIL]"
	RedactedPhone = "[REDACTED_PHONE]"
)

// PII patterns: email-like substrings, and phone-like runs of at least ten
// digit/separator characters bounded by digits.
var piiPatterns = []struct {
	pattern *regexp.Regexp
	repl    string
}{
	{regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`), RedactedEmail},
	{regexp.MustCompile(`\+?\d[\d\s\-()]{8,}\d`), RedactedPhone},
}

// RedactPII replaces email-like and phone-like substrings with fixed
// placeholder tokens. It must run before the bias and risk checks so that
// no downstream short-circuit can skip it.
func RedactPII(text string) string {
	out := text
	for _, p := range piiPatterns {
		out = p.pattern.ReplaceAllString(out, p.repl)
	}
	return out
}
