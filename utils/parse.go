// utils/parse.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimal unmarshals from a JSON number or a numeric string. Form pages post
// text inputs as strings, so both shapes arrive for the same field. Anything
// non-numeric is an unmarshal error, not NaN.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid decimal %s", s)
		}
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", s)
	}
	*d = Decimal(f)
	return nil
}
