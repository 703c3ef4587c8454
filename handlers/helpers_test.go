package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func queryContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/summary?"+rawQuery, nil)
	return c
}

func TestParseDateRangeBothBounds(t *testing.T) {
	c := queryContext(t, "startDate=2025-01-01&endDate=2025-03-31")

	start, end, err := parseDateRange(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start == nil || end == nil {
		t.Fatal("expected both bounds")
	}
	if start.Month() != time.January || end.Month() != time.March {
		t.Errorf("parsed window %v..%v", start, end)
	}
}

func TestParseDateRangeSingleBoundIgnored(t *testing.T) {
	for _, q := range []string{"startDate=2025-01-01", "endDate=2025-03-31", ""} {
		start, end, err := parseDateRange(queryContext(t, q))
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", q, err)
		}
		if start != nil || end != nil {
			t.Errorf("single bound %q produced a window", q)
		}
	}
}

func TestParseDateRangeMalformed(t *testing.T) {
	_, _, err := parseDateRange(queryContext(t, "startDate=yesterday&endDate=2025-03-31"))
	if err == nil {
		t.Error("malformed date accepted")
	}
}

func TestParseDateRangeRFC3339(t *testing.T) {
	c := queryContext(t, "startDate=2025-01-01T00:00:00Z&endDate=2025-03-31T23:59:59Z")

	start, end, err := parseDateRange(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start == nil || end == nil {
		t.Fatal("expected both bounds")
	}
	if end.Hour() != 23 {
		t.Errorf("end hour = %d", end.Hour())
	}
}
