package jsonlib

import (
	"bytes"
	"encoding/json"
	"github.com/cockroachdb/errors"
)

var NotAnObjectError = errors.New("json value is not an object")

// UnmarshalObject only accepts a top level json object, an empty body reads as {}.
// T should be a struct or map[string]
func UnmarshalObject[T any](b []byte) (T, error) {
	t := new(T)

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return *t, nil
	}

	if trimmed[0] != '{' {
		return *t, errors.Wrapf(NotAnObjectError, "Body starts with %q", trimmed[0])
	}

	err := json.Unmarshal(trimmed, t)
	if err != nil {
		return *t, errors.Wrap(err, "Could not unmarshal json object")
	}

	return *t, nil
}

// Object keeps its values raw so that keys are matched exactly,
// unlike unmarshalling into a struct
type Object map[string]json.RawMessage

// Field comes back nil when the key is missing or null
func Field[T any](object Object, key string) (*T, error) {
	raw, ok := object[key]
	if !ok {
		return nil, nil
	}

	var t *T
	err := json.Unmarshal(raw, &t)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not unmarshal field %q", key)
	}

	return t, nil
}
