package session

import "strings"

// validEmail is a structural check only: exactly one @, a non-empty local
// part, and a domain with at least one dot. Deliverability is someone
// else's problem.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}
	return true
}
