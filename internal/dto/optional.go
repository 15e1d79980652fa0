package dto

import "encoding/json"

// Optional distinguishes an absent JSON key from an explicit null. Set is
// true only when the key appeared in the request body; encoding/json never
// calls UnmarshalJSON for absent keys.
// Optional 区分 JSON 键缺失与显式 null
type Optional[T any] struct {
	Val T
	Set bool
}

// UnmarshalJSON 实现 json.Unmarshaler
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		var zero T
		o.Val = zero
		return nil
	}
	return json.Unmarshal(data, &o.Val)
}

// MarshalJSON 实现 json.Marshaler
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Val)
}
