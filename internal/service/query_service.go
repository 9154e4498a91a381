package service

import (
	"sort"
	"strings"
	"time"

	"github.com/paysbypays/merchant-dashboard/internal/model"
)

const FilterAll = "ALL"

// Filter is the combined predicate applied to the payment list. Zero
// values mean "no constraint": empty or ALL status/merchant, empty
// search text, zero date bounds.
type Filter struct {
	Status   string
	Merchant string
	Search   string
	DateFrom time.Time
	DateTo   time.Time
}

var knownStatuses = map[string]struct{}{
	string(model.StatusSuccess):   {},
	string(model.StatusFailed):    {},
	string(model.StatusCancelled): {},
}

// NormalizeStatus maps a raw status query value onto the filter enum.
// Anything that is not one of the three payment statuses means ALL,
// matching the landing behavior of the status query parameter.
func NormalizeStatus(raw string) string {
	if _, ok := knownStatuses[raw]; ok {
		return raw
	}
	return FilterAll
}

// ParseDateBound parses a YYYY-MM-DD filter bound. An invalid value is
// treated as an absent bound, not an error.
func ParseDateBound(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

type QueryService struct{}

func NewQueryService() *QueryService {
	return &QueryService{}
}

// Apply sorts the payments newest first and keeps the records matching
// every active filter. The input slice is never modified; identical
// inputs always produce identical output.
func (s *QueryService) Apply(payments []model.PaymentRecord, f Filter, index map[string]model.MerchantRecord) []model.PaymentRecord {
	type timed struct {
		rec model.PaymentRecord
		at  time.Time
	}

	sorted := make([]timed, len(payments))
	for i, p := range payments {
		at, _ := p.Time()
		sorted[i] = timed{rec: p, at: at}
	}
	// Unparseable timestamps carry the zero time and sort last.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].at.After(sorted[j].at)
	})

	keyword := strings.ToLower(strings.TrimSpace(f.Search))
	var dateToEnd time.Time
	if !f.DateTo.IsZero() {
		// Inclusive end of day.
		dateToEnd = f.DateTo.Add(24*time.Hour - time.Millisecond)
	}

	result := make([]model.PaymentRecord, 0, len(sorted))
	for _, entry := range sorted {
		p := entry.rec

		if f.Status != "" && f.Status != FilterAll && string(p.Status) != f.Status {
			continue
		}
		if f.Merchant != "" && f.Merchant != FilterAll && p.MerchantCode != f.Merchant {
			continue
		}
		if !f.DateFrom.IsZero() && entry.at.Before(f.DateFrom) {
			continue
		}
		if !dateToEnd.IsZero() && entry.at.After(dateToEnd) {
			continue
		}
		if keyword != "" {
			name := ""
			if m, ok := index[p.MerchantCode]; ok {
				name = m.MerchantName
			}
			codeMatch := strings.Contains(strings.ToLower(p.PaymentCode), keyword)
			nameMatch := name != "" && strings.Contains(strings.ToLower(name), keyword)
			if !codeMatch && !nameMatch {
				continue
			}
		}

		result = append(result, p)
	}

	return result
}

// SortMerchantRevenue orders a copy of the revenue rows by revenue,
// descending for "high" (the default) and ascending for "low". Ties
// keep their original order.
func (s *QueryService) SortMerchantRevenue(rows []model.MerchantRevenue, order string) []model.MerchantRevenue {
	sorted := make([]model.MerchantRevenue, len(rows))
	copy(sorted, rows)

	if order == "low" {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Revenue.LessThan(sorted[j].Revenue)
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Revenue.GreaterThan(sorted[j].Revenue)
		})
	}

	return sorted
}
