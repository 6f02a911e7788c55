package models

import "encoding/json"

// Partial-update requests must distinguish a field that was left out of
// the JSON body from a field explicitly sent as null. A plain pointer
// collapses both into nil, so patch fields are wrapped in an Opt type:
// Present is false when the key was absent, true otherwise, and Value
// is nil exactly when the client sent null.

// OptString is a three-state optional string field.
type OptString struct {
	Present bool
	Value   *string
}

// Set returns an OptString carrying a concrete value.
func SetString(s string) OptString {
	return OptString{Present: true, Value: &s}
}

// NullString returns an OptString that clears the field.
func NullString() OptString {
	return OptString{Present: true}
}

func (o *OptString) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

func (o OptString) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// OptDate is a three-state optional calendar date field.
type OptDate struct {
	Present bool
	Value   *Date
}

// SetDate returns an OptDate carrying a concrete value.
func SetDate(d Date) OptDate {
	return OptDate{Present: true, Value: &d}
}

// NullDate returns an OptDate that clears the field.
func NullDate() OptDate {
	return OptDate{Present: true}
}

func (o *OptDate) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var d Date
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	o.Value = &d
	return nil
}

func (o OptDate) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// OptGender is a three-state optional gender field for patient updates.
type OptGender struct {
	Present bool
	Value   *Gender
}

func (o *OptGender) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var g Gender
	if err := json.Unmarshal(data, &g); err != nil {
		return err
	}
	o.Value = &g
	return nil
}

func (o OptGender) MarshalJSON() ([]byte, error) {
	if !o.Present || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
