package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// PostalAddress is a value object representing a physical address
// It is immutable - all operations return new PostalAddress instances
type PostalAddress struct {
	line1   string
	line2   string
	city    string
	state   string
	pincode string
	country string
}

// PostalAddressOption is a functional option for configuring PostalAddress
type PostalAddressOption func(*PostalAddress)

// WithLine2 sets the secondary address line
func WithLine2(line2 string) PostalAddressOption {
	return func(a *PostalAddress) {
		a.line2 = strings.TrimSpace(line2)
	}
}

// WithPincode sets the postal index number
func WithPincode(pincode string) PostalAddressOption {
	return func(a *PostalAddress) {
		a.pincode = strings.TrimSpace(pincode)
	}
}

// WithCountry sets the country
func WithCountry(country string) PostalAddressOption {
	return func(a *PostalAddress) {
		a.country = strings.TrimSpace(country)
	}
}

// NewPostalAddress creates a new PostalAddress with the required fields
// Line1, city and state are required; the rest are optional
func NewPostalAddress(line1, city, state string, opts ...PostalAddressOption) (PostalAddress, error) {
	line1 = strings.TrimSpace(line1)
	city = strings.TrimSpace(city)
	state = strings.TrimSpace(state)

	if line1 == "" {
		return PostalAddress{}, fmt.Errorf("address line cannot be empty")
	}
	if len(line1) > 500 {
		return PostalAddress{}, fmt.Errorf("address line cannot exceed 500 characters")
	}
	if city == "" {
		return PostalAddress{}, fmt.Errorf("city cannot be empty")
	}
	if len(city) > 100 {
		return PostalAddress{}, fmt.Errorf("city cannot exceed 100 characters")
	}
	if state == "" {
		return PostalAddress{}, fmt.Errorf("state cannot be empty")
	}
	if len(state) > 100 {
		return PostalAddress{}, fmt.Errorf("state cannot exceed 100 characters")
	}

	addr := PostalAddress{
		line1:   line1,
		city:    city,
		state:   state,
		country: "India",
	}

	for _, opt := range opts {
		opt(&addr)
	}

	if len(addr.pincode) > 20 {
		return PostalAddress{}, fmt.Errorf("pincode cannot exceed 20 characters")
	}
	if len(addr.country) > 100 {
		return PostalAddress{}, fmt.Errorf("country cannot exceed 100 characters")
	}

	return addr, nil
}

// NewPostalAddressFull creates a new PostalAddress with all fields
func NewPostalAddressFull(line1, line2, city, state, pincode, country string) (PostalAddress, error) {
	return NewPostalAddress(line1, city, state,
		WithLine2(line2), WithPincode(pincode), WithCountry(country))
}

// MustNewPostalAddress creates a new PostalAddress, panics on error
func MustNewPostalAddress(line1, city, state string, opts ...PostalAddressOption) PostalAddress {
	addr, err := NewPostalAddress(line1, city, state, opts...)
	if err != nil {
		panic(err)
	}
	return addr
}

// EmptyPostalAddress returns an empty address (for optional address fields)
func EmptyPostalAddress() PostalAddress {
	return PostalAddress{}
}

// Line1 returns the primary address line
func (a PostalAddress) Line1() string {
	return a.line1
}

// Line2 returns the secondary address line
func (a PostalAddress) Line2() string {
	return a.line2
}

// City returns the city
func (a PostalAddress) City() string {
	return a.city
}

// State returns the state
func (a PostalAddress) State() string {
	return a.state
}

// Pincode returns the postal index number
func (a PostalAddress) Pincode() string {
	return a.pincode
}

// Country returns the country
func (a PostalAddress) Country() string {
	return a.country
}

// IsEmpty returns true if the address is empty (all fields are blank)
func (a PostalAddress) IsEmpty() bool {
	return a.line1 == "" && a.line2 == "" && a.city == "" && a.state == ""
}

// FullAddress returns the complete formatted address string
func (a PostalAddress) FullAddress() string {
	if a.IsEmpty() {
		return ""
	}

	parts := make([]string, 0, 6)
	if a.line1 != "" {
		parts = append(parts, a.line1)
	}
	if a.line2 != "" {
		parts = append(parts, a.line2)
	}
	if a.city != "" {
		parts = append(parts, a.city)
	}
	if a.state != "" {
		parts = append(parts, a.state)
	}
	if a.pincode != "" {
		parts = append(parts, a.pincode)
	}
	if a.country != "" {
		parts = append(parts, a.country)
	}
	return strings.Join(parts, ", ")
}

// String returns a string representation of the address
func (a PostalAddress) String() string {
	return a.FullAddress()
}

// Equals returns true if both addresses are equal
func (a PostalAddress) Equals(other PostalAddress) bool {
	return a.line1 == other.line1 &&
		a.line2 == other.line2 &&
		a.city == other.city &&
		a.state == other.state &&
		a.pincode == other.pincode &&
		a.country == other.country
}

// SameCity returns true if both addresses are in the same city
func (a PostalAddress) SameCity(other PostalAddress) bool {
	return a.state == other.state && a.city == other.city
}

// postalAddressJSON is used for JSON marshaling/unmarshaling
type postalAddressJSON struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (a PostalAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(postalAddressJSON{
		Line1:   a.line1,
		Line2:   a.line2,
		City:    a.city,
		State:   a.state,
		Pincode: a.pincode,
		Country: a.country,
	})
}

// UnmarshalJSON implements json.Unmarshaler. It delegates to the
// NewPostalAddressFull factory so validation rules apply on every path in.
func (a *PostalAddress) UnmarshalJSON(data []byte) error {
	var v postalAddressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	// Allow empty addresses from JSON
	if v.Line1 == "" && v.Line2 == "" && v.City == "" && v.State == "" {
		*a = EmptyPostalAddress()
		return nil
	}

	addr, err := NewPostalAddressFull(v.Line1, v.Line2, v.City, v.State, v.Pincode, v.Country)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Value implements driver.Valuer for database storage
// Stores as JSON string; empty addresses persist as NULL
func (a PostalAddress) Value() (driver.Value, error) {
	if a.IsEmpty() {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for database retrieval
func (a *PostalAddress) Scan(value any) error {
	if value == nil {
		*a = EmptyPostalAddress()
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into PostalAddress", value)
	}

	if len(data) == 0 || string(data) == "null" {
		*a = EmptyPostalAddress()
		return nil
	}

	return json.Unmarshal(data, a)
}
