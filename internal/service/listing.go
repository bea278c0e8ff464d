package service

import (
	"context"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/internal/pricing"
)

func validateListingRules(req model.ListingDraftRequest, price int) error {
	if req.Kind == model.KindExchange && req.Category != model.CategoryBooks {
		return errs.ErrExchangeBooksOnly
	}
	if req.Category == model.CategoryBooks && price > model.BookPriceCap {
		return errs.ErrBookPriceCap
	}
	if req.PhotoCount > model.MaxPhotosPerListing {
		return errs.ErrTooManyPhotos
	}
	return nil
}

// CreateDraft is step 1 of the publish flow: validate the business rules
// and park the fields until the seller settles on a price.
func (s *Service) CreateDraft(ctx context.Context, owner string, req model.ListingDraftRequest) (model.ListingDraft, error) {
	if err := validateListingRules(req, req.Price); err != nil {
		return model.ListingDraft{}, err
	}
	if err := s.repo.EnsureUser(ctx, owner); err != nil {
		return model.ListingDraft{}, err
	}
	return s.drafts.Put(owner, req), nil
}

// DraftPricing is step 2: the advisor compares the draft against the
// available listings of the same category.
func (s *Service) DraftPricing(ctx context.Context, owner, draftUid string) (pricing.Suggestion, error) {
	draft, err := s.drafts.Get(draftUid, owner)
	if err != nil {
		return pricing.Suggestion{}, err
	}
	comparables, err := s.repo.ComparablePrices(ctx, draft.Fields.Category)
	if err != nil {
		return pricing.Suggestion{}, err
	}
	return pricing.Suggest(draft.Fields.Price, draft.Fields.Condition, comparables), nil
}

// ConfirmDraft is step 3: persist the listing with the price the seller
// settled on, which may differ from the drafted one.
func (s *Service) ConfirmDraft(ctx context.Context, owner, draftUid string, finalPrice int) (model.Listing, error) {
	draft, err := s.drafts.Take(draftUid, owner)
	if err != nil {
		return model.Listing{}, err
	}
	if err := validateListingRules(draft.Fields, finalPrice); err != nil {
		return model.Listing{}, err
	}
	return s.repo.CreateListing(ctx, model.Listing{
		Owner:       owner,
		Title:       draft.Fields.Title,
		Description: draft.Fields.Description,
		Price:       finalPrice,
		Category:    draft.Fields.Category,
		Condition:   draft.Fields.Condition,
		Kind:        draft.Fields.Kind,
		City:        draft.Fields.City,
		Region:      draft.Fields.Region,
	})
}

func (s *Service) ListListings(ctx context.Context, filter model.ListingFilter, page, size int) (model.ListListings, error) {
	return s.repo.ListListings(ctx, filter, page, size)
}

func (s *Service) GetListing(ctx context.Context, listingUid string) (model.ListingDetail, error) {
	l, err := s.repo.GetListing(ctx, listingUid)
	if err != nil {
		return model.ListingDetail{}, err
	}
	photos, err := s.repo.GetPhotos(ctx, l.ID)
	if err != nil {
		return model.ListingDetail{}, err
	}
	evaluations, err := s.repo.ListEvaluations(ctx, l.Owner, 5)
	if err != nil {
		return model.ListingDetail{}, err
	}

	s.events.Publish(model.Event{Kind: model.EventListingViewed, ListingUid: l.ListingUid})

	return model.ListingDetail{
		Listing:     l,
		Photos:      photos,
		Evaluations: evaluations,
	}, nil
}

func (s *Service) UpdateListing(ctx context.Context, owner, listingUid string, req model.ListingDraftRequest) (model.Listing, error) {
	if err := validateListingRules(req, req.Price); err != nil {
		return model.Listing{}, err
	}
	return s.repo.UpdateListing(ctx, owner, listingUid, req)
}

func (s *Service) WithdrawListing(ctx context.Context, owner, listingUid string) error {
	return s.repo.WithdrawListing(ctx, owner, listingUid)
}

func (s *Service) IncrementViews(ctx context.Context, listingUid string) error {
	return s.repo.IncrementViews(ctx, listingUid)
}

func (s *Service) AddPhoto(ctx context.Context, listingUid, owner, path string) (model.ListingPhoto, error) {
	return s.repo.AddPhoto(ctx, listingUid, owner, path)
}
