package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubLikeRepo struct {
	counts map[string]int64
	err    error
}

func (r *stubLikeRepo) Increment(_ context.Context, animalID string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.counts[animalID]++
	return r.counts[animalID], nil
}

func (r *stubLikeRepo) Count(_ context.Context, animalID string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.counts[animalID], nil
}

func TestLikeService_Like(t *testing.T) {
	repo := &stubLikeRepo{counts: make(map[string]int64)}
	svc := NewLikeService(repo, zerolog.Nop())

	for want := int64(1); want <= 3; want++ {
		got, err := svc.Like(context.Background(), "42")
		if err != nil {
			t.Fatalf("like failed: %v", err)
		}
		if got != want {
			t.Fatalf("expected count %d, got %d", want, got)
		}
	}

	if got, _ := svc.Likes(context.Background(), "42"); got != 3 {
		t.Fatalf("expected 3 likes, got %d", got)
	}
	if got, _ := svc.Likes(context.Background(), "7"); got != 0 {
		t.Fatalf("expected 0 likes for unliked animal, got %d", got)
	}
}

func TestLikeService_Like_StoreError(t *testing.T) {
	repo := &stubLikeRepo{counts: make(map[string]int64), err: errors.New("write concern")}
	svc := NewLikeService(repo, zerolog.Nop())

	if _, err := svc.Like(context.Background(), "42"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
