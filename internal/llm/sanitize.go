package llm

import (
	"encoding/json"
	"errors"
	"strings"
	"unicode"
)

const fence = "```"

// StripCodeFence removes a markdown code fence around s, with or without a
// language tag such as "json". Unfenced input is only trimmed.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, fence) {
		s = s[len(fence):]
		// language tag runs up to the first newline or space
		tag := strings.IndexFunc(s, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '+'
		})
		if tag > 0 {
			s = s[tag:]
		} else if tag < 0 && !strings.ContainsAny(s, "{[") {
			s = ""
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, fence)
	return strings.TrimSpace(s)
}

// DecodeContent strips any fence from a model reply and checks that what is
// left is a single JSON value.
func DecodeContent(content string) (json.RawMessage, error) {
	body := StripCodeFence(content)
	if body == "" {
		return nil, errors.New("empty response content")
	}
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
