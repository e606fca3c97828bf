package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyanshuraj27/Smart-City-Infrastructure-IoT-Analytics-System/internal/apierr"
)

// Pagination holds the window applied to capped list queries.
type Pagination struct {
	Limit    int `json:"limit"`
	Offset   int `json:"offset"`
	Page     int `json:"page"`
	MaxLimit int `json:"maxLimit"`
}

// Parse reads the optional `limit` and `page` query params.
// Without them the window is the first defaultLimit rows; limit is clamped to maxLimit.
func Parse(c *gin.Context, defaultLimit, maxLimit int) (Pagination, error) {
	if maxLimit <= 0 {
		maxLimit = defaultLimit
	}

	limit := defaultLimit
	if ls := c.Query("limit"); ls != "" {
		v, err := strconv.Atoi(ls)
		if err != nil || v <= 0 {
			return Pagination{}, apierr.Validation("invalid limit parameter")
		}
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	page := 1
	if ps := c.Query("page"); ps != "" {
		v, err := strconv.Atoi(ps)
		if err != nil || v <= 0 {
			return Pagination{}, apierr.Validation("invalid page parameter")
		}
		page = v
	}

	return Pagination{Limit: limit, Offset: (page - 1) * limit, Page: page, MaxLimit: maxLimit}, nil
}
