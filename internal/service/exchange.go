package service

import (
	"context"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
)

// ProposeExchange validates the preconditions and creates a pending
// request. The pending-scoped unique index is the last line of defense
// against a concurrent duplicate; the repository maps its violation to
// ErrConflict.
func (s *Service) ProposeExchange(ctx context.Context, listingUid, requester string, req model.ProposeExchangeRequest) (model.ExchangeRequest, error) {
	listing, err := s.repo.GetListing(ctx, listingUid)
	if err != nil {
		return model.ExchangeRequest{}, err
	}
	if listing.Kind != model.KindExchange {
		return model.ExchangeRequest{}, errs.ErrNotExchangeable
	}
	if listing.Status != model.ListingAvailable {
		return model.ExchangeRequest{}, errs.ErrNotAvailable
	}
	if listing.Owner == requester {
		return model.ExchangeRequest{}, errs.ErrOwnListing
	}
	if req.BookPhoto == "" {
		return model.ExchangeRequest{}, errs.ErrPhotoRequired
	}
	if err := s.repo.EnsureUser(ctx, requester); err != nil {
		return model.ExchangeRequest{}, err
	}

	res, err := s.repo.CreateExchangeRequest(ctx, listing.ID, requester, req)
	if err != nil {
		return model.ExchangeRequest{}, err
	}
	res.ListingUid = listing.ListingUid
	return res, nil
}

func (s *Service) GetExchangeInbox(ctx context.Context, username string) (model.ExchangeInbox, error) {
	return s.repo.GetExchangeInbox(ctx, username)
}

func (s *Service) DecideExchange(ctx context.Context, requestUid, actor string, decision model.Decision) (model.ExchangeRequest, error) {
	res, err := s.repo.DecideExchange(ctx, requestUid, actor, decision)
	if err != nil {
		return model.ExchangeRequest{}, err
	}
	if res.Status == model.RequestAccepted {
		s.events.Publish(model.Event{
			Kind:       model.EventExchangeAccepted,
			ListingUid: res.ListingUid,
			RequestUid: res.RequestUid,
			Username:   actor,
		})
	}
	return res, nil
}
