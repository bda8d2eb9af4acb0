package rop

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

const (
	okKey    = "ok"
	errorKey = "error"
	leftKey  = "left"
	rightKey = "right"
)

// MarshalJSON encodes r as {"ok": value} or {"error": err}.
func (r Result[A, E]) MarshalJSON() ([]byte, error) {
	if r.isOk {
		return json.Marshal(map[string]A{okKey: r.value})
	}
	return json.Marshal(map[string]E{errorKey: r.err})
}

// UnmarshalJSON leaves r untouched on a JSON null, as encoding/json does for
// other types.
func (r *Result[A, E]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	key, raw, err := decodeTagged(data, okKey, errorKey)
	if err != nil {
		return errors.Wrap(err, "decode result")
	}

	if key == okKey {
		var v A
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.Wrap(err, "decode result ok value")
		}
		*r = Ok[A, E](v)
		return nil
	}

	var e E
	if err := json.Unmarshal(raw, &e); err != nil {
		return errors.Wrap(err, "decode result error value")
	}
	*r = Error[A](e)
	return nil
}

// MarshalJSON encodes e as {"left": value} or {"right": value}.
func (e Either[L, R]) MarshalJSON() ([]byte, error) {
	if e.isRight {
		return json.Marshal(map[string]R{rightKey: e.right})
	}
	return json.Marshal(map[string]L{leftKey: e.left})
}

// UnmarshalJSON leaves e untouched on a JSON null.
func (e *Either[L, R]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	key, raw, err := decodeTagged(data, leftKey, rightKey)
	if err != nil {
		return errors.Wrap(err, "decode either")
	}

	if key == leftKey {
		var l L
		if err := json.Unmarshal(raw, &l); err != nil {
			return errors.Wrap(err, "decode either left value")
		}
		*e = Left[L, R](l)
		return nil
	}

	var r R
	if err := json.Unmarshal(raw, &r); err != nil {
		return errors.Wrap(err, "decode either right value")
	}
	*e = Right[L](r)
	return nil
}

// MarshalJSON encodes a present value as itself and None as null. A present
// value that itself encodes as null, such as Some[*T](nil), decodes back as
// None.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*o = None[T]()
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.Wrap(err, "decode option")
	}
	*o = Some(v)
	return nil
}

// decodeTagged expects an object with exactly one key, which must be one of
// first or second.
func decodeTagged(data []byte, first, second string) (string, json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if len(fields) != 1 {
		return "", nil, errors.Wrapf(ErrInvalidEncoding, "expected one of %q or %q, got %d keys",
			first, second, len(fields))
	}

	for _, key := range []string{first, second} {
		if raw, ok := fields[key]; ok {
			return key, raw, nil
		}
	}
	return "", nil, errors.Wrapf(ErrInvalidEncoding, "expected key %q or %q", first, second)
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
