package service

import (
	"context"
	"foodgram/internal/domainerr"
	"foodgram/internal/entity"
	"testing"
)

func TestFollowAndUnfollow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	_, err := env.subscription.Follow(ctx, alice.ID, alice.ID, 0)
	assertKind(t, err, domainerr.KindValidation)

	view, err := env.subscription.Follow(ctx, alice.ID, bob.ID, 0)
	if err != nil {
		t.Fatalf("Follow: %v", err)
	}
	if view.ID != bob.ID || view.IsSubscribed {
		t.Errorf("unexpected followee view %+v", view)
	}
	if view.Recipes == nil || view.RecipesCount != 0 {
		t.Errorf("expected empty preview, got %+v", view)
	}

	_, err = env.subscription.Follow(ctx, alice.ID, bob.ID, 0)
	assertKind(t, err, domainerr.KindConflict)

	if err := env.subscription.Unfollow(ctx, alice.ID, bob.ID); err != nil {
		t.Fatalf("Unfollow: %v", err)
	}
	assertKind(t, env.subscription.Unfollow(ctx, alice.ID, bob.ID), domainerr.KindNotFound)

	if _, err := env.subscription.Follow(ctx, alice.ID, bob.ID, 0); err != nil {
		t.Fatalf("Follow after unfollow: %v", err)
	}
}

func TestFollowUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	_, err := env.subscription.Follow(ctx, alice.ID, 999, 0)
	assertKind(t, err, domainerr.KindNotFound)
	assertKind(t, env.subscription.Unfollow(ctx, alice.ID, 999), domainerr.KindNotFound)
}

func TestListFollowees(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	carol := env.user(t, "carol")
	flour := env.ingredient(t, "flour", "g")

	for _, name := range []string{"one", "two", "three", "four"} {
		env.compose(t, bob.ID, name, line(flour.ID, 1))
	}
	env.compose(t, carol.ID, "solo", line(flour.ID, 1))

	for _, followee := range []uint{bob.ID, carol.ID} {
		if _, err := env.subscription.Follow(ctx, alice.ID, followee, 0); err != nil {
			t.Fatalf("Follow: %v", err)
		}
	}
	// carol follows alice back
	if _, err := env.subscription.Follow(ctx, carol.ID, alice.ID, 0); err != nil {
		t.Fatalf("Follow back: %v", err)
	}

	views, meta, err := env.subscription.ListFollowees(ctx, alice.ID, entity.FolloweeQuery{})
	if err != nil {
		t.Fatalf("ListFollowees: %v", err)
	}
	if meta.Total != 2 || len(views) != 2 {
		t.Fatalf("expected two followees, got %+v (%+v)", views, meta)
	}

	byID := map[uint]entity.FolloweeView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	if got := byID[bob.ID]; len(got.Recipes) != 3 || got.RecipesCount != 4 || got.IsSubscribed {
		t.Errorf("unexpected bob view %+v", got)
	}
	if got := byID[bob.ID]; got.Recipes[0].Name != "four" {
		t.Errorf("expected newest recipe first, got %q", got.Recipes[0].Name)
	}
	if got := byID[carol.ID]; len(got.Recipes) != 1 || got.RecipesCount != 1 || !got.IsSubscribed {
		t.Errorf("unexpected carol view %+v", got)
	}

	limited, _, err := env.subscription.ListFollowees(ctx, alice.ID, entity.FolloweeQuery{RecipesLimit: 1})
	if err != nil {
		t.Fatalf("ListFollowees limited: %v", err)
	}
	for _, v := range limited {
		if len(v.Recipes) != 1 {
			t.Errorf("expected preview of 1 for %s, got %d", v.Username, len(v.Recipes))
		}
	}

	paged, meta, err := env.subscription.ListFollowees(ctx, alice.ID, entity.FolloweeQuery{BaseParams: entity.BaseParams{PageSize: 1, Page: 2}})
	if err != nil {
		t.Fatalf("ListFollowees paged: %v", err)
	}
	if len(paged) != 1 || paged[0].ID != carol.ID || meta.Total != 2 {
		t.Errorf("unexpected second page %+v (%+v)", paged, meta)
	}
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	if _, err := env.subscription.Follow(ctx, alice.ID, bob.ID, 0); err != nil {
		t.Fatalf("Follow: %v", err)
	}

	tests := []struct {
		name   string
		viewer uint
		want   bool
	}{
		{name: "follower", viewer: alice.ID, want: true},
		{name: "self", viewer: bob.ID, want: false},
		{name: "anonymous", viewer: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := env.subscription.Profile(ctx, bob.ID, tt.viewer)
			if err != nil {
				t.Fatalf("Profile: %v", err)
			}
			if view.Username != "bob" || view.IsSubscribed != tt.want {
				t.Errorf("unexpected view %+v", view)
			}
		})
	}

	_, err := env.subscription.Profile(ctx, 999, alice.ID)
	assertKind(t, err, domainerr.KindNotFound)
}
