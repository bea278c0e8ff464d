package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

func TestDraftStore(t *testing.T) {
	t.Parallel()

	fields := model.ListingDraftRequest{
		Title:       "winter jacket",
		Description: "barely worn",
		Category:    model.CategoryClothing,
		Condition:   model.ConditionVeryGood,
		Kind:        model.KindSell,
		Price:       1200,
		City:        "Lyon",
	}

	t.Run("put then get then take", func(t *testing.T) {
		t.Parallel()
		store := NewDraftStore(time.Minute)

		draft := store.Put("alice", fields)
		require.NotEmpty(t, draft.DraftUid)
		require.Equal(t, "alice", draft.Owner)

		got, err := store.Get(draft.DraftUid, "alice")
		require.NoError(t, err)
		require.Equal(t, draft, got)

		taken, err := store.Take(draft.DraftUid, "alice")
		require.NoError(t, err)
		require.Equal(t, draft, taken)

		_, err = store.Get(draft.DraftUid, "alice")
		require.ErrorIs(t, err, errs.ErrDraftExpired)
	})

	t.Run("unknown draft", func(t *testing.T) {
		t.Parallel()
		store := NewDraftStore(time.Minute)

		_, err := store.Get("no-such-draft", "alice")
		require.ErrorIs(t, err, errs.ErrDraftExpired)
	})

	t.Run("foreign draft looks expired", func(t *testing.T) {
		t.Parallel()
		store := NewDraftStore(time.Minute)

		draft := store.Put("alice", fields)
		_, err := store.Get(draft.DraftUid, "bob")
		require.ErrorIs(t, err, errs.ErrDraftExpired)

		_, err = store.Take(draft.DraftUid, "bob")
		require.ErrorIs(t, err, errs.ErrDraftExpired)

		// still there for its owner
		_, err = store.Get(draft.DraftUid, "alice")
		require.NoError(t, err)
	})

	t.Run("ttl expiry", func(t *testing.T) {
		t.Parallel()
		store := NewDraftStore(10 * time.Millisecond)

		draft := store.Put("alice", fields)
		time.Sleep(25 * time.Millisecond)

		_, err := store.Get(draft.DraftUid, "alice")
		require.ErrorIs(t, err, errs.ErrDraftExpired)
	})

	t.Run("put evicts expired drafts", func(t *testing.T) {
		t.Parallel()
		store := NewDraftStore(10 * time.Millisecond)

		stale := store.Put("alice", fields)
		time.Sleep(25 * time.Millisecond)
		store.Put("alice", fields)

		store.mu.Lock()
		_, ok := store.drafts[stale.DraftUid]
		store.mu.Unlock()
		require.False(t, ok)
	})
}
