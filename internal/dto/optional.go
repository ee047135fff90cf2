package dto

import "encoding/json"

// Optional is a request field that distinguishes three states the usual
// pointer-typed field cannot: absent from the body, explicitly null, and
// set to a value. Partial updates need the distinction because
// `"categoryId": null` clears the reference while an omitted categoryId
// leaves it untouched.
type Optional[T any] struct {
	Set   bool // key was present in the JSON body
	Valid bool // value was non-null
	Value T
}

// UnmarshalJSON is only invoked for keys present in the body, so Set
// reliably tracks presence.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the value as a pointer, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if !o.Set || !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
