package planning

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Value implements driver.Valuer for database storage
func (t EMITerms) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *EMITerms) Scan(value any) error {
	return scanJSON(value, t, "EMITerms")
}

// Value implements driver.Valuer for database storage
func (t TimelyDiscountTerms) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for database retrieval
func (t *TimelyDiscountTerms) Scan(value any) error {
	return scanJSON(value, t, "TimelyDiscountTerms")
}

func scanJSON(value, dest any, typeName string) error {
	if value == nil {
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("cannot scan %T into %s", value, typeName)
	}

	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	return json.Unmarshal(data, dest)
}
