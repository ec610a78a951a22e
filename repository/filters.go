package repository

import (
	"fmt"
	"strings"
)

// buildWhere renders the filter map as a WHERE clause. Filter keys arrive
// straight from query strings, so only columns named in allowed reach the
// SQL; anything else is dropped.
func buildWhere(filters map[string]interface{}, allowed map[string]bool) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	i := 1
	for k, v := range filters {
		if !allowed[k] {
			continue
		}
		where = append(where, fmt.Sprintf("%s = $%d", k, i))
		args = append(args, v)
		i++
	}
	if len(where) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

var slipFilterColumns = map[string]bool{
	"id": true, "slip_number": true, "party": true, "vehicle_no": true,
	"supplier": true, "from_location": true, "to_location": true,
}

var memoFilterColumns = map[string]bool{
	"id": true, "memo_number": true, "supplier": true,
	"loading_slip_id": true, "is_paid": true,
}

var billFilterColumns = map[string]bool{
	"id": true, "bill_number": true, "party": true,
	"loading_slip_id": true, "is_received": true,
}

var bankingFilterColumns = map[string]bool{
	"id": true, "type": true, "category": true,
	"reference_id": true, "reference_name": true,
}
