package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "association-console/pkg/errors"
	"association-console/pkg/listing"
)

func TestParseListQuery_Defaults(t *testing.T) {
	q, err := ParseListQuery(url.Values{}, []string{"reference"})
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, listing.DefaultLimit, q.Limit)
	assert.Equal(t, []string{"reference"}, q.Fields)
	assert.Nil(t, q.DateFrom)
	assert.Nil(t, q.DateTo)
	assert.Empty(t, q.SortBy)
}

func TestParseListQuery_AllParams(t *testing.T) {
	values := url.Values{
		"search":    {"  wheelchair "},
		"status":    {"available"},
		"date_from": {"2024-01-01"},
		"date_to":   {"2024-01-31"},
		"sort":      {"-date"},
		"page":      {"3"},
		"limit":     {"25"},
	}

	q, err := ParseListQuery(values, nil)
	require.NoError(t, err)
	assert.Equal(t, "wheelchair", q.Search)
	assert.Equal(t, "available", q.Status)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *q.DateFrom)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *q.DateTo)
	assert.Equal(t, listing.SortByDate, q.SortBy)
	assert.True(t, q.SortDesc)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
}

func TestParseListQuery_Errors(t *testing.T) {
	cases := map[string]url.Values{
		"date_from": {"date_from": {"01/02/2024"}},
		"date_to":   {"date_from": {"2024-02-02"}, "date_to": {"2024-02-01"}},
		"sort":      {"sort": {"brand"}},
	}
	for field, values := range cases {
		_, err := ParseListQuery(values, nil)
		var verr *apperrors.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Contains(t, verr.Fields, field)
	}
}
