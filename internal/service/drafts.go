package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

// DraftStore holds in-progress listing drafts between the form, pricing
// and confirmation steps. Drafts are per-user session state and are never
// persisted; an expired or consumed draft is simply gone and the caller
// starts over.
type DraftStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]model.ListingDraft
}

func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{
		ttl:    ttl,
		drafts: make(map[string]model.ListingDraft),
	}
}

func (s *DraftStore) Put(owner string, fields model.ListingDraftRequest) model.ListingDraft {
	draft := model.ListingDraft{
		DraftUid:  uuid.New().String(),
		Owner:     owner,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	s.mu.Lock()
	s.evictExpired()
	s.drafts[draft.DraftUid] = draft
	s.mu.Unlock()
	return draft
}

// Get fails with ErrDraftExpired for unknown, expired or foreign drafts:
// the caller cannot distinguish these and restarts the flow either way.
func (s *DraftStore) Get(draftUid, owner string) (model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftUid]
	if !ok || draft.Owner != owner || s.expired(draft) {
		return model.ListingDraft{}, errs.ErrDraftExpired
	}
	return draft, nil
}

// Take is Get plus removal; used by the confirmation step.
func (s *DraftStore) Take(draftUid, owner string) (model.ListingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft, ok := s.drafts[draftUid]
	if !ok || draft.Owner != owner || s.expired(draft) {
		return model.ListingDraft{}, errs.ErrDraftExpired
	}
	delete(s.drafts, draftUid)
	return draft, nil
}

func (s *DraftStore) expired(d model.ListingDraft) bool {
	return time.Since(d.CreatedAt) > s.ttl
}

func (s *DraftStore) evictExpired() {
	for uid, d := range s.drafts {
		if s.expired(d) {
			delete(s.drafts, uid)
		}
	}
}
