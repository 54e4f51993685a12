package handler

import (
	"strings"
	"unicode/utf8"
)

const (
	maxUsernameLength = 15
	maxTweetLength    = 140
)

// Missing or oversized fields collect into a field-to-reason map that is
// surfaced as a 422 before any business logic runs. Limits count characters,
// not bytes, so multi-byte input is measured the way users read it.

func validateCredentials(username string, password string) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(username) == "" {
		fields["username"] = "Username is required in the request body"
	} else if utf8.RuneCountInString(strings.TrimSpace(username)) > maxUsernameLength {
		fields["username"] = "Username limited to a max of 15 characters"
	}

	if strings.TrimSpace(password) == "" {
		fields["password"] = "Password is required in the request body"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

func validateTweetBody(body string) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(body) == "" {
		fields["body"] = "Tweet body is required in the request body"
	} else if utf8.RuneCountInString(strings.TrimSpace(body)) > maxTweetLength {
		fields["body"] = "Tweet body limited to a max of 140 characters"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
