package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Placeholder is a single {key} -> value substitution.
type Placeholder struct {
	Key   string
	Value string
}

// Placeholders is an ordered set of substitutions. It is encoded as a JSON
// object and keeps the key order the client wrote, which is the order the
// substitutions are applied in.
type Placeholders []Placeholder

// UnmarshalJSON decodes a JSON object of string values, preserving key order.
func (p *Placeholders) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("placeholders must be an object")
	}

	var out Placeholders
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("placeholder %q must be a string", key)
		}
		out = append(out, Placeholder{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

// MarshalJSON encodes the placeholders as a JSON object in order.
func (p Placeholders) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, ph := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(ph.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(ph.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value for key and whether it was present.
func (p Placeholders) Get(key string) (string, bool) {
	for _, ph := range p {
		if ph.Key == key {
			return ph.Value, true
		}
	}
	return "", false
}
