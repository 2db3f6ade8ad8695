package models

import (
	"encoding/json"

	"github.com/username/propfolio/src/utils"
)

// FlexNumber is a numeric field that tolerates both JSON numbers and strings
// carrying currency symbols, percent signs or thousands separators
// ("$450,000", "5.5%"). A value that cannot be parsed decodes to 0; report
// generation must never fail on malformed input.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexNumber(utils.ParseAmount(s))
		return nil
	}
	*f = 0
	return nil
}

func (f FlexNumber) Float() float64 {
	return float64(f)
}

// FloatOr returns the override value if the pointer is set, otherwise the
// supplied default. Unset and explicit zero are distinct: a caller sending 0
// means 0, a caller omitting the field gets the default.
func FloatOr(f *FlexNumber, fallback float64) float64 {
	if f == nil {
		return fallback
	}
	return float64(*f)
}
