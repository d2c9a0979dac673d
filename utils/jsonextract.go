package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrNoJSONObject is returned when a model reply holds nothing that looks
// like a JSON object.
var ErrNoJSONObject = errors.New("no json object in response")

var (
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	bareObject = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSONObject pulls the JSON payload out of free-form model output.
// Candidates are tried in order: ```json fenced blocks, the first value of a
// reply that starts with '{' (trailing prose ignored), then the span from the
// first '{' to the last '}'. The first candidate that decodes as an object
// wins. When none does, the first candidate is returned so the caller's
// decode error describes it.
func ExtractJSONObject(text string) (string, error) {
	var candidates []string
	for _, m := range fencedJSON.FindAllStringSubmatch(text, -1) {
		candidates = append(candidates, m[1])
	}
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "{") {
		if first, ok := leadingObject(trimmed); ok {
			candidates = append(candidates, first)
		} else {
			candidates = append(candidates, trimmed)
		}
	}
	if m := bareObject.FindString(text); m != "" {
		candidates = append(candidates, m)
	}

	if len(candidates) == 0 {
		return "", ErrNoJSONObject
	}
	for _, c := range candidates {
		if isObject(c) {
			return c, nil
		}
	}
	return candidates[0], nil
}

// leadingObject decodes the first JSON value of s and returns its text.
func leadingObject(s string) (string, bool) {
	var raw json.RawMessage
	if err := json.NewDecoder(strings.NewReader(s)).Decode(&raw); err != nil {
		return "", false
	}
	return string(raw), true
}

func isObject(s string) bool {
	b := bytes.TrimSpace([]byte(s))
	return len(b) > 0 && b[0] == '{' && json.Valid(b)
}
