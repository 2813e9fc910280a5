package llm

import (
	"encoding/json"
	"fmt"
)

// DecodeObject locates the first balanced JSON object in raw model output
// and unmarshals it into T. Models wrap their JSON in markdown fences or
// prose despite instructions not to; scanning for the first balanced
// brace pair tolerates both without a separate cleanup pass. A non-nil
// validate function rejects structurally valid but semantically bad
// payloads before they reach the caller.
func DecodeObject[T any](raw string, validate func(T) error) (T, error) {
	var zero T

	body, ok := firstObject(raw)
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object in model output", ErrInvalidOutput)
	}

	var decoded T
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validate != nil {
		if err := validate(decoded); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return decoded, nil
}

// firstObject returns the substring spanning the first balanced top-level
// { ... } pair, tracking string literals so braces and escaped quotes
// inside values don't confuse the depth count.
func firstObject(s string) (string, bool) {
	depth := 0
	start := -1
	inString := false

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case inString && c == '\\':
			i++
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			if depth == 0 {
				start = i
			}
			depth++
		case c == '}' && depth > 0:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
