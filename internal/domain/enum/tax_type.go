package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TaxType represents how a tax value is applied to a price
type TaxType string

const (
	TaxTypePercentage TaxType = "percentage"
	TaxTypeFixed      TaxType = "fixed"
)

// ParseTaxType accepts the canonical names case-insensitively
func ParseTaxType(s string) (TaxType, error) {
	switch TaxType(strings.ToLower(strings.TrimSpace(s))) {
	case TaxTypePercentage:
		return TaxTypePercentage, nil
	case TaxTypeFixed:
		return TaxTypeFixed, nil
	}
	return "", fmt.Errorf("unknown tax type %q", s)
}

// IsValid reports whether t is one of the known tax types
func (t TaxType) IsValid() bool {
	return t == TaxTypePercentage || t == TaxTypeFixed
}

func (t TaxType) String() string {
	if !t.IsValid() {
		return string(TaxTypePercentage)
	}
	return string(t)
}

func (t TaxType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaxType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTaxType(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TaxType) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TaxType) Scan(value interface{}) error {
	if value == nil {
		*t = TaxTypePercentage
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = TaxType(v)
	case []byte:
		*t = TaxType(v)
	default:
		return fmt.Errorf("cannot scan %T into TaxType", value)
	}
	return nil
}
