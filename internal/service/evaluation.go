package service

import (
	"context"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

func (s *Service) CreateEvaluation(ctx context.Context, buyer string, req model.CreateEvaluationRequest) (model.Evaluation, error) {
	if req.Seller == buyer {
		return model.Evaluation{}, errs.ErrSelfEvaluation
	}
	if err := s.repo.EnsureUser(ctx, buyer); err != nil {
		return model.Evaluation{}, err
	}
	ev, err := s.repo.CreateEvaluation(ctx, buyer, req)
	if err != nil {
		return model.Evaluation{}, err
	}
	s.events.Publish(model.Event{Kind: model.EventEvaluationCreated, Username: req.Seller})
	return ev, nil
}

func (s *Service) ListEvaluations(ctx context.Context, seller string, limit int) ([]model.Evaluation, error) {
	return s.repo.ListEvaluations(ctx, seller, limit)
}
