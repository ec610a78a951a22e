package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildWhereDropsUnknownColumns(t *testing.T) {
	where, args := buildWhere(map[string]interface{}{
		"party":                        "Acme Traders",
		"id; DROP TABLE bill--":        1,
		"pg_sleep(10)":                 1,
		"1=1 OR reference_name IS NOT": "x",
	}, billFilterColumns)

	require.Equal(t, " WHERE party = $1", where)
	require.Equal(t, []interface{}{"Acme Traders"}, args)
}

func TestBuildWhereNumbersPlaceholders(t *testing.T) {
	where, args := buildWhere(map[string]interface{}{
		"supplier": "Sharma Transport",
		"is_paid":  false,
	}, memoFilterColumns)

	require.Contains(t, where, " WHERE ")
	require.Contains(t, where, "$1")
	require.Contains(t, where, "$2")
	require.Len(t, args, 2)
}

func TestBuildWhereEmpty(t *testing.T) {
	where, args := buildWhere(map[string]interface{}{}, slipFilterColumns)
	require.Empty(t, where)
	require.Nil(t, args)
}
