package dto

import (
	"bytes"
	"encoding/json"
)

// Field captures one JSON value together with whether its key was present
// in the request body. encoding/json only calls UnmarshalJSON for keys that
// appear, including those set to null.
type Field struct {
	Present bool
	Raw     json.RawMessage
}

func (f *Field) UnmarshalJSON(data []byte) error {
	f.Present = true
	f.Raw = append(f.Raw[:0], data...)
	return nil
}

// IsNull reports whether the key was present with a JSON null value.
func (f Field) IsNull() bool {
	return f.Present && bytes.Equal(bytes.TrimSpace(f.Raw), []byte("null"))
}

// Supplied reports whether the key was present with a non-null value.
func (f Field) Supplied() bool {
	return f.Present && !f.IsNull()
}
