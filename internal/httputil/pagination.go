package httputil

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultPageLimit is used when the request carries no limit parameter.
	DefaultPageLimit = 50
	// MaxPageLimit caps the number of items a single list request may return.
	MaxPageLimit = 100
)

var (
	// ErrInvalidOffset is returned when offset is not a non-negative integer.
	ErrInvalidOffset = errors.New("invalid offset parameter: must be a non-negative integer")
	// ErrInvalidLimit is returned when limit is not an integer within [1, MaxPageLimit].
	ErrInvalidLimit = errors.New("invalid limit parameter: must be between 1 and 100")
)

// Page is a validated offset/limit window.
type Page struct {
	Offset int
	Limit  int
}

// ParsePage reads the offset and limit query parameters of c. Missing parameters take
// their defaults; present but out-of-range values are rejected rather than clamped.
func ParsePage(c *gin.Context) (Page, error) {
	page := Page{Offset: 0, Limit: DefaultPageLimit}

	if raw, ok := c.GetQuery("offset"); ok {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Page{}, ErrInvalidOffset
		}
		page.Offset = offset
	}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxPageLimit {
			return Page{}, ErrInvalidLimit
		}
		page.Limit = limit
	}

	return page, nil
}
