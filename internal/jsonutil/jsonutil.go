// Package jsonutil holds the JSON decoding helpers shared by the API client
// and the development server: every failure is wrapped with the caller's
// context so logs say which payload was bad.
package jsonutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// UnmarshalWithContext unmarshals data into v and wraps any error with context.
func UnmarshalWithContext(data []byte, v any, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// DecodeWithContext decodes a single JSON value from r into v.
// An empty body is reported as an error rather than io.EOF.
func DecodeWithContext(r io.Reader, v any, context string) error {
	if err := json.NewDecoder(r).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s: empty body", context)
		}
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalArrayAllowEmpty unmarshals data into a slice. A JSON null yields
// an empty, non-nil slice.
func UnmarshalArrayAllowEmpty[T any](data []byte, context string) ([]T, error) {
	var entries []T
	if err := UnmarshalWithContext(data, &entries, context); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []T{}
	}
	return entries, nil
}
