package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// parsePagination reads the page/limit query parameters. Absent, non-numeric
// or non-positive values fall back to the defaults rather than erroring.
func parsePagination(c echo.Context) (page, limit, offset int) {
	page = defaultPage
	if raw := c.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			page = parsed
		}
	}

	limit = defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			limit = parsed
		}
	}

	return page, limit, (page - 1) * limit
}
