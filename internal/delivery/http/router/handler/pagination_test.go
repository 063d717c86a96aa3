package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults when absent", query: "", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "explicit values", query: "page=3&limit=25", wantPage: 3, wantLimit: 25, wantOffset: 50},
		{name: "non-numeric falls back", query: "page=abc&limit=xyz", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "zero falls back", query: "page=0&limit=0", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "negative falls back", query: "page=-2&limit=-5", wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "page only", query: "page=2", wantPage: 2, wantLimit: 10, wantOffset: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/accounts?"+tt.query, nil)
			c := echo.New().NewContext(req, httptest.NewRecorder())

			page, limit, offset := parsePagination(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
