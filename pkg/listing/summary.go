package listing

import "strings"

type Summary struct {
	Count      int            `json:"count"`
	ByStatus   map[string]int `json:"by_status"`
	TotalValue float64        `json:"total_value"`
}

// Summarize aggregates a filtered list. value may be nil when the records
// carry no monetary value.
func Summarize[T Record](items []T, value func(T) float64) Summary {
	s := Summary{Count: len(items), ByStatus: make(map[string]int)}
	for _, item := range items {
		status := strings.TrimSpace(item.StatusValue())
		if status == "" {
			status = "unknown"
		}
		s.ByStatus[status]++
		if value != nil {
			s.TotalValue += value(item)
		}
	}
	return s
}

// ApplyWithSummary is Apply plus the summary of the whole filtered set, not
// only of the returned page.
func ApplyWithSummary[T Record](items []T, q Query, value func(T) float64) (Page[T], Summary) {
	filtered := Filter(items, q)
	return Paginate(Sort(filtered, q), q.Page, q.Limit), Summarize(filtered, value)
}
