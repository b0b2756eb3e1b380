package http

import (
	"net/http"
	"testing"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/memory"
)

func TestGetUser(t *testing.T) {
	e, store := newTestApp(t)
	store.SeedDemoData()

	rec := doJSON(t, e, http.MethodGet, "/api/users/"+memory.DemoUserID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var user domain.User
	decodeBody(t, rec, &user)
	if user.Username != "alexchen" {
		t.Fatalf("unexpected username %q", user.Username)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/users/00000000-0000-0000-0000-000000000009", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown user, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/users/zzz", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a malformed id, got %d", rec.Code)
	}
}
