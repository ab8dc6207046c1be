package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(newContext(t, "/"))

	if p.Page != DefaultPage {
		t.Errorf("expected default page %d, got %d", DefaultPage, p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	p := FromContext(newContext(t, "/?page=3&limit=25"))

	if p.Page != 3 {
		t.Errorf("expected page 3, got %d", p.Page)
	}
	if p.Limit != 25 {
		t.Errorf("expected limit 25, got %d", p.Limit)
	}
}

func TestFromContext_Clamping(t *testing.T) {
	p := FromContext(newContext(t, "/?page=0&limit=500"))

	if p.Page != 1 {
		t.Errorf("expected page clamped to 1, got %d", p.Page)
	}
	if p.Limit != MaxLimit {
		t.Errorf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeValues(t *testing.T) {
	p := FromContext(newContext(t, "/?page=-2&limit=-5"))

	if p.Page != 1 {
		t.Errorf("expected page 1 for negative input, got %d", p.Page)
	}
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit for negative input, got %d", p.Limit)
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		params Params
		want   int
	}{
		{Params{Page: 1, Limit: 10}, 0},
		{Params{Page: 2, Limit: 10}, 10},
		{Params{Page: 5, Limit: 25}, 100},
	}
	for _, tt := range tests {
		if got := tt.params.Offset(); got != tt.want {
			t.Errorf("Offset() for page=%d limit=%d = %d, want %d",
				tt.params.Page, tt.params.Limit, got, tt.want)
		}
	}
}

func TestNewResponse(t *testing.T) {
	data := []string{"a", "b", "c"}
	r := NewResponse(data, 25, Params{Page: 2, Limit: 10})

	if r.Meta.Total != 25 {
		t.Errorf("expected total 25, got %d", r.Meta.Total)
	}
	if r.Meta.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", r.Meta.TotalPages)
	}
	if !r.Meta.HasNextPage {
		t.Error("expected hasNextPage on page 2 of 3")
	}
	if !r.Meta.HasPreviousPage {
		t.Error("expected hasPreviousPage on page 2")
	}
}

func TestNewResponse_SinglePage(t *testing.T) {
	r := NewResponse([]string{"a"}, 1, Params{Page: 1, Limit: 10})

	if r.Meta.TotalPages != 1 {
		t.Errorf("expected 1 total page, got %d", r.Meta.TotalPages)
	}
	if r.Meta.HasNextPage {
		t.Error("did not expect hasNextPage on the only page")
	}
	if r.Meta.HasPreviousPage {
		t.Error("did not expect hasPreviousPage on the first page")
	}
}

func TestNewResponse_Empty(t *testing.T) {
	r := NewResponse([]string{}, 0, Params{Page: 1, Limit: 10})

	if r.Meta.TotalPages != 0 {
		t.Errorf("expected 0 total pages, got %d", r.Meta.TotalPages)
	}
	if r.Meta.HasNextPage {
		t.Error("did not expect hasNextPage with no results")
	}
}

func TestNewResponse_ExactMultiple(t *testing.T) {
	r := NewResponse([]string{}, 30, Params{Page: 3, Limit: 10})

	if r.Meta.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", r.Meta.TotalPages)
	}
	if r.Meta.HasNextPage {
		t.Error("did not expect hasNextPage on the last page")
	}
}
