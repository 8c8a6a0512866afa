package omise

import "regexp"

var scrubPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(Authorization: Basic )[A-Za-z0-9+/=]+`), "${1}[FILTERED]"},
	{regexp.MustCompile(`("number"\s*:\s*")[^"]+`), "${1}[FILTERED]"},
	{regexp.MustCompile(`("security_code"\s*:\s*")[^"]+`), "${1}[FILTERED]"},
}

// Scrub redacts the Basic-Auth credential, the card number, and the
// security code from a request/response transcript, leaving everything
// else intact. Transcripts must pass through here before being logged
// or persisted anywhere.
func Scrub(transcript string) string {
	for _, p := range scrubPatterns {
		transcript = p.re.ReplaceAllString(transcript, p.repl)
	}
	return transcript
}
