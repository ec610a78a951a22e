package models

import (
	"bytes"
	"strconv"
	"strings"
)

// Rupees is a monetary amount in INR. Form clients send numeric fields
// loosely typed, so decoding is lenient: numbers and numeric strings parse
// normally, empty or malformed input becomes 0 instead of failing the
// request.
type Rupees float64

func (r *Rupees) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}
	s := string(data)
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			*r = 0
			return nil
		}
		s = strings.TrimSpace(unq)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*r = 0
		return nil
	}
	*r = Rupees(v)
	return nil
}
