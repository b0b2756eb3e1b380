package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/routewise/backend/internal/domain"
	"github.com/routewise/backend/internal/repository/memory"
)

func TestUserServiceCreateAndGet(t *testing.T) {
	svc := NewUserService(memory.NewStore().Users())
	ctx := context.Background()

	user, err := svc.Create(ctx, domain.NewUser{Username: "maria", Email: "maria@example.com", Name: "Maria Silva"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	fetched, err := svc.Get(ctx, user.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if fetched.Username != "maria" {
		t.Fatalf("unexpected username %q", fetched.Username)
	}
}

func TestUserServiceCreateRejectsMissingFields(t *testing.T) {
	svc := NewUserService(memory.NewStore().Users())

	_, err := svc.Create(context.Background(), domain.NewUser{Username: "maria"})
	fields := fieldMessages(t, err)
	if _, ok := fields["email"]; !ok {
		t.Fatalf("expected an email error, got %v", fields)
	}
	if _, ok := fields["name"]; !ok {
		t.Fatalf("expected a name error, got %v", fields)
	}
}

func TestUserServiceCreateRejectsDuplicates(t *testing.T) {
	svc := NewUserService(memory.NewStore().Users())
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.NewUser{Username: "maria", Email: "maria@example.com", Name: "Maria Silva"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err := svc.Create(ctx, domain.NewUser{Username: "maria", Email: "other@example.com", Name: "Other Maria"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists for a taken username, got %v", err)
	}

	_, err = svc.Create(ctx, domain.NewUser{Username: "maria2", Email: "maria@example.com", Name: "Maria Again"})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists for a taken email, got %v", err)
	}
}

func TestUserServiceGetMissing(t *testing.T) {
	svc := NewUserService(memory.NewStore().Users())

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
