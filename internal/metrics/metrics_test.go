package metrics

import (
	"errors"
	"foodgram/internal/domainerr"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: "ok"},
		{name: "conflict", err: domainerr.Conflict("mark", "already exists"), want: "conflict"},
		{name: "not found", err: domainerr.NotFound("recipe", uint(1)), want: "not_found"},
		{name: "infrastructure", err: errors.New("database is locked"), want: "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Result(tt.err); got != tt.want {
				t.Errorf("Result() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordMarkWrite(t *testing.T) {
	counter := MarkWrites.WithLabelValues("favorite", "mark", "conflict")
	before := testutil.ToFloat64(counter)

	RecordMarkWrite("favorite", "mark", domainerr.ErrConflict)
	RecordMarkWrite("favorite", "mark", domainerr.ErrConflict)

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("expected 2 conflicts recorded, got %v", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/api/recipes", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/api/recipes", 200, 15*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1 request recorded, got %v", got)
	}
}

func TestRecordRecipeWrite(t *testing.T) {
	counter := RecipeWrites.WithLabelValues("compose", "ok")
	before := testutil.ToFloat64(counter)

	RecordRecipeWrite("compose", nil)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1 compose recorded, got %v", got)
	}
}
