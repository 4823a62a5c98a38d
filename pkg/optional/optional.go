// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package optional provides a tri-state JSON field for partial updates.

A PATCH body needs to tell three cases apart for every field: the key is
absent (leave the stored value alone), the key is null (clear it), or the key
carries a value (overwrite). A plain pointer collapses the first two.

Usage:

	type patch struct {
	    Name optional.Value[string] `json:"name"`
	}

	// {}               -> Name.Set == false
	// {"name": null}   -> Name.Set == true, Name.Null == true
	// {"name": "Emma"} -> Name.Set == true, Name.Val == "Emma"
*/
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is a JSON field that records whether it was present in the payload.
type Value[T any] struct {
	Set  bool
	Null bool
	Val  T
}

// Of returns a present, non-null Value.
func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, Val: v}
}

// Null returns a present Value holding JSON null.
func Null[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked for keys present in the payload, which is what
// makes Set meaningful.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.Null = true
		v.Val = zero
		return nil
	}
	v.Null = false
	return json.Unmarshal(data, &v.Val)
}

// MarshalJSON writes null for absent or null values.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.Set || v.Null {
		return []byte("null"), nil
	}
	return json.Marshal(v.Val)
}

// Present reports whether the field carried a non-null value.
func (v Value[T]) Present() bool {
	return v.Set && !v.Null
}

// Ptr returns a pointer to the value, or nil when absent or null.
func (v Value[T]) Ptr() *T {
	if !v.Present() {
		return nil
	}
	val := v.Val
	return &val
}
