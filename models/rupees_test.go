package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRupeesUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Rupees
	}{
		{"number", `12500.5`, 12500.5},
		{"negative", `-300`, -300},
		{"numeric string", `"4500"`, 4500},
		{"numeric string with spaces", `" 4500.25 "`, 4500.25},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"garbage string", `"abc"`, 0},
		{"boolean", `true`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got Rupees
			require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRupeesUnmarshalInsideStruct(t *testing.T) {
	var slip LoadingSlip
	payload := `{"party":"Acme","vehicle_no":"GJ01AB1234","supplier":"Sharma","freight":"50000","advance":""}`
	require.NoError(t, json.Unmarshal([]byte(payload), &slip))
	require.Equal(t, Rupees(50000), slip.Freight)
	require.Equal(t, Rupees(0), slip.Advance)
}
