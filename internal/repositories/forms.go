package repositories

import (
	"strconv"

	"association-console/pkg/types"
)

func formatDate(d types.Date) string {
	if !d.Valid() {
		return ""
	}
	return d.Format(types.DateLayout)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
