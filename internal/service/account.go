package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/videgrenier/marketplace-service/internal/model"
)

func (s *Service) GetProfile(ctx context.Context, username string) (model.Profile, error) {
	return s.repo.GetProfile(ctx, username)
}

func (s *Service) UpdateProfile(ctx context.Context, username string, req model.UpdateProfileRequest) (model.User, error) {
	if err := s.repo.EnsureUser(ctx, username); err != nil {
		return model.User{}, err
	}
	return s.repo.UpdateProfile(ctx, username, req)
}

func (s *Service) SetAvatar(ctx context.Context, username, path string) error {
	return s.repo.SetAvatar(ctx, username, path)
}

func (s *Service) CreateVerificationRequest(ctx context.Context, username string, req model.CreateVerificationRequest) (model.VerificationRequest, error) {
	if err := s.repo.EnsureUser(ctx, username); err != nil {
		return model.VerificationRequest{}, err
	}
	return s.repo.CreateVerificationRequest(ctx, username, req)
}

func (s *Service) CreateBadge(ctx context.Context, req model.CreateBadgeRequest) (model.Badge, error) {
	return s.repo.CreateBadge(ctx, req)
}

func (s *Service) ListBadges(ctx context.Context) ([]model.Badge, error) {
	return s.repo.ListBadges(ctx)
}

func (s *Service) CreateItemRequest(ctx context.Context, requester string, req model.CreateItemRequest) (model.ItemRequest, error) {
	if err := s.repo.EnsureUser(ctx, requester); err != nil {
		return model.ItemRequest{}, err
	}
	return s.repo.CreateItemRequest(ctx, requester, req)
}

func (s *Service) ListItemRequests(ctx context.Context, requester string) ([]model.ItemRequest, error) {
	return s.repo.ListItemRequests(ctx, requester)
}

const batchDecideConcurrency = 4

// BatchDecideVerifications resolves each pending request independently:
// one failing item is reported in Failed without poisoning the rest.
func (s *Service) BatchDecideVerifications(ctx context.Context, req model.BatchDecideRequest) (model.BatchDecideResult, error) {
	return s.batchDecide(ctx, req.IDs, func(ctx context.Context, id int) error {
		return s.repo.DecideVerification(ctx, id, req.Decision, req.AdminReply, req.BadgeID)
	})
}

func (s *Service) BatchDecideItemRequests(ctx context.Context, req model.BatchDecideRequest) (model.BatchDecideResult, error) {
	return s.batchDecide(ctx, req.IDs, func(ctx context.Context, id int) error {
		return s.repo.DecideItemRequest(ctx, id, req.Decision, req.AdminReply)
	})
}

func (s *Service) batchDecide(ctx context.Context, ids []int, decide func(context.Context, int) error) (model.BatchDecideResult, error) {
	var (
		mu     sync.Mutex
		result model.BatchDecideResult
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchDecideConcurrency)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			err := decide(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed = append(result.Failed, id)
				return nil
			}
			result.Decided++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.BatchDecideResult{}, err
	}
	return result, nil
}
