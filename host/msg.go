package host

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeMsg decodes a JSON message strictly: unknown fields and trailing data are rejected.
func DecodeMsg(msg []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to parse message: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("failed to parse message: trailing data")
	}
	return nil
}

// OneOf checks that exactly one variant of a message is set.
func OneOf(set ...bool) error {
	n := 0
	for _, ok := range set {
		if ok {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("failed to parse message: expected exactly one variant, got %d", n)
	}
	return nil
}

// Deref returns the pointed string, or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
