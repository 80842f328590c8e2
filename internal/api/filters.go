package api

import (
	"fmt"
	"net/http"

	"garrison/internal/ledger"
	"garrison/internal/model"
)

// filterFromQuery parses the date/base/type query parameters shared by the
// listing and report endpoints.
func filterFromQuery(r *http.Request) (ledger.Filter, error) {
	q := r.URL.Query()
	f := ledger.Filter{
		Base:          q.Get("base"),
		EquipmentType: q.Get("type"),
	}

	if v := q.Get("date"); v != "" {
		d, err := model.ParseDate(v)
		if err != nil {
			return f, fmt.Errorf("invalid date")
		}
		f.Date = d
	}

	return f, nil
}

// parseOptionalDate parses a date string from a request body. Empty input
// yields the zero date so the validator reports the missing field.
func parseOptionalDate(s string) (model.Date, error) {
	if s == "" {
		return model.Date{}, nil
	}
	return model.ParseDate(s)
}
