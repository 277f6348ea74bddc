package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/users?"+rawQuery, http.NoBody)
	return c
}

func TestParseUsersPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		rawQuery   string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", defaultListLimit, 0},
		{"both", "limit=25&offset=10", 25, 10},
		{"only offset", "offset=7", defaultListLimit, 7},
		{"limit zero clamped", "limit=0", 1, 0},
		{"limit negative clamped", "limit=-5", 1, 0},
		{"limit above max clamped", "limit=999", maxListLimit, 0},
		{"limit at max", "limit=100", maxListLimit, 0},
		{"limit non int", "limit=foo", defaultListLimit, 0},
		{"empty limit", "limit=", defaultListLimit, 0},
		{"offset non int", "offset=bar", defaultListLimit, 0},
		{"offset negative", "limit=10&offset=-3", 10, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := parseUsersPage(ctxWithQuery(tt.rawQuery))
			if p.Limit != tt.wantLimit || p.Offset != tt.wantOffset {
				t.Fatalf("got %+v, want limit=%d offset=%d (query=%q)", p, tt.wantLimit, tt.wantOffset, tt.rawQuery)
			}
		})
	}
}
