package handler

import (
	"context"

	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/internal/pricing"
	"github.com/videgrenier/marketplace-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type MarketplaceService interface {
	CreateDraft(ctx context.Context, owner string, req model.ListingDraftRequest) (model.ListingDraft, error)
	DraftPricing(ctx context.Context, owner, draftUid string) (pricing.Suggestion, error)
	ConfirmDraft(ctx context.Context, owner, draftUid string, finalPrice int) (model.Listing, error)
	ListListings(ctx context.Context, filter model.ListingFilter, page, size int) (model.ListListings, error)
	GetListing(ctx context.Context, listingUid string) (model.ListingDetail, error)
	UpdateListing(ctx context.Context, owner, listingUid string, req model.ListingDraftRequest) (model.Listing, error)
	WithdrawListing(ctx context.Context, owner, listingUid string) error
	IncrementViews(ctx context.Context, listingUid string) error
	AddPhoto(ctx context.Context, listingUid, owner, path string) (model.ListingPhoto, error)

	ProposeExchange(ctx context.Context, listingUid, requester string, req model.ProposeExchangeRequest) (model.ExchangeRequest, error)
	GetExchangeInbox(ctx context.Context, username string) (model.ExchangeInbox, error)
	DecideExchange(ctx context.Context, requestUid, actor string, decision model.Decision) (model.ExchangeRequest, error)

	CreateEvaluation(ctx context.Context, buyer string, req model.CreateEvaluationRequest) (model.Evaluation, error)
	ListEvaluations(ctx context.Context, seller string, limit int) ([]model.Evaluation, error)

	GetProfile(ctx context.Context, username string) (model.Profile, error)
	UpdateProfile(ctx context.Context, username string, req model.UpdateProfileRequest) (model.User, error)
	SetAvatar(ctx context.Context, username, path string) error
	CreateVerificationRequest(ctx context.Context, username string, req model.CreateVerificationRequest) (model.VerificationRequest, error)
	CreateBadge(ctx context.Context, req model.CreateBadgeRequest) (model.Badge, error)
	ListBadges(ctx context.Context) ([]model.Badge, error)
	CreateItemRequest(ctx context.Context, requester string, req model.CreateItemRequest) (model.ItemRequest, error)
	ListItemRequests(ctx context.Context, requester string) ([]model.ItemRequest, error)
	BatchDecideVerifications(ctx context.Context, req model.BatchDecideRequest) (model.BatchDecideResult, error)
	BatchDecideItemRequests(ctx context.Context, req model.BatchDecideRequest) (model.BatchDecideResult, error)

	StartConversation(ctx context.Context, me string, req model.StartConversationRequest) (model.Conversation, error)
	ListConversations(ctx context.Context, username string) ([]model.ConversationView, error)
	GetConversationMessages(ctx context.Context, convID int, username string) ([]model.Message, error)
	SendMessage(ctx context.Context, convID int, sender, content string) (model.Message, error)
}

var _ MarketplaceService = (*service.Service)(nil)
