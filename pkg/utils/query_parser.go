package utils

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "association-console/pkg/errors"
	"association-console/pkg/listing"
	"association-console/pkg/types"
)

// ParseListQuery reads the filter state of a list view:
// search, status, date_from, date_to, sort (date or -date), page and limit.
// searchFields are the record fields the free text is matched against.
func ParseListQuery(query url.Values, searchFields []string) (listing.Query, error) {
	q := listing.Query{
		Search: strings.TrimSpace(query.Get("search")),
		Fields: searchFields,
		Status: strings.TrimSpace(query.Get("status")),
		Page:   1,
		Limit:  listing.DefaultLimit,
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			q.Limit = l
		}
	}
	if pageStr := query.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			q.Page = p
		}
	}

	if sort := query.Get("sort"); sort != "" {
		q.SortDesc = strings.HasPrefix(sort, "-")
		q.SortBy = strings.TrimPrefix(sort, "-")
		if q.SortBy != listing.SortByDate {
			return q, apperrors.FieldError("sort", "قيمة الترتيب غير مدعومة")
		}
	}

	var err error
	if q.DateFrom, err = parseDateParam(query, "date_from"); err != nil {
		return q, err
	}
	if q.DateTo, err = parseDateParam(query, "date_to"); err != nil {
		return q, err
	}
	if q.DateFrom != nil && q.DateTo != nil && q.DateTo.Before(*q.DateFrom) {
		return q, apperrors.FieldError("date_to", "يجب أن يكون تاريخ النهاية لاحقا لتاريخ البداية")
	}
	return q, nil
}

func parseDateParam(query url.Values, key string) (*time.Time, error) {
	d, err := types.ParseDate(query.Get(key))
	if err != nil {
		return nil, apperrors.FieldError(key, "صيغة التاريخ غير صحيحة")
	}
	return d.Ptr(), nil
}
