// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/dalemusser/waffle/pantry/query"
)

// Offset-paging bounds shared by every list endpoint.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated skip/limit window.
type Params struct {
	Skip  int64
	Limit int64
}

// Default returns the first page at the default size.
func Default() Params { return Params{Skip: 0, Limit: DefaultLimit} }

// Parse reads ?skip= and ?limit=. Missing values take defaults; values that
// are not integers or fall outside skip >= 0, 1 <= limit <= MaxLimit are
// reported as inputval.Errors rather than silently clamped.
func Parse(r *http.Request) (Params, error) {
	p := Default()
	errs := inputval.Errors{}

	if s := query.Get(r, "skip"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		switch {
		case err != nil:
			errs.Add("skip", "Skip must be an integer.")
		case n < 0:
			errs.Add("skip", "Skip must be at least 0.")
		default:
			p.Skip = n
		}
	}

	if s := query.Get(r, "limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		switch {
		case err != nil:
			errs.Add("limit", "Limit must be an integer.")
		case n < 1:
			errs.Add("limit", "Limit must be at least 1.")
		case n > MaxLimit:
			errs.Add("limit", "Limit must be at most "+strconv.Itoa(MaxLimit)+".")
		default:
			p.Limit = n
		}
	}

	if err := errs.Err(); err != nil {
		return Params{}, err
	}
	return p, nil
}
