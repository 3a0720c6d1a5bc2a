package booking

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Discount is a price reduction granted on a booking, by the company or by a
// broker. All four fields are optional and deliberately kept as opaque
// strings: the issuing forms submit them as text and they must round-trip
// through persistence byte-exact, never re-parsed into floats
type Discount struct {
	InauguralDiscount *string `json:"inaugural_discount,omitempty"`
	Rebate            *string `json:"rebate,omitempty"`
	PerArea           *string `json:"per_area,omitempty"`
	Percentage        *string `json:"percentage,omitempty"`
}

// IsEmpty returns true if no field is set
func (d Discount) IsEmpty() bool {
	return d.InauguralDiscount == nil && d.Rebate == nil && d.PerArea == nil && d.Percentage == nil
}

// Value implements driver.Valuer for database storage
// An empty discount persists as NULL, not as an empty JSON object
func (d Discount) Value() (driver.Value, error) {
	if d.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(d)
}

// Scan implements sql.Scanner for database retrieval
func (d *Discount) Scan(value any) error {
	if value == nil {
		*d = Discount{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into Discount", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*d = Discount{}
		return nil
	}

	return json.Unmarshal(data, d)
}
