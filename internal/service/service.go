package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/repository"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	drafts *DraftStore
	events EventPublisher
}

func NewService(repo repository.Repository, drafts *DraftStore, events EventPublisher, log *zap.Logger) *Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &Service{
		log:    log,
		repo:   repo,
		drafts: drafts,
		events: events,
	}
}

// NewDefaultService is the test-friendly constructor: in-memory drafts, no
// event publishing.
func NewDefaultService(repo repository.Repository, log *zap.Logger) *Service {
	return NewService(repo, NewDraftStore(30*time.Minute), NopPublisher{}, log)
}
