package req

import "encoding/json"

// OptionalID is an id in a partial update. Set reports whether the field was in
// the body at all, so an explicit null can clear a reference.
type OptionalID struct {
	Set   bool
	Valid bool
	Value uint
}

func SetID(id uint) OptionalID {
	return OptionalID{Set: true, Valid: true, Value: id}
}

func NullID() OptionalID {
	return OptionalID{Set: true}
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Valid = false
	o.Value = 0
	if string(data) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

// Ptr returns the id, or nil when it is absent or null.
func (o OptionalID) Ptr() *uint {
	if !o.Valid {
		return nil
	}
	value := o.Value
	return &value
}

// Column is the value to write, nil for null. ok is false when the field was absent.
func (o OptionalID) Column() (value interface{}, ok bool) {
	if !o.Set {
		return nil, false
	}
	if !o.Valid {
		return nil, true
	}
	return o.Value, true
}
