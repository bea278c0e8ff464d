package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// listings
	CreateListing(ctx context.Context, l model.Listing) (model.Listing, error)
	ListListings(ctx context.Context, filter model.ListingFilter, page, size int) (model.ListListings, error)
	GetListing(ctx context.Context, listingUid string) (model.Listing, error)
	UpdateListing(ctx context.Context, owner, listingUid string, req model.ListingDraftRequest) (model.Listing, error)
	WithdrawListing(ctx context.Context, owner, listingUid string) error
	IncrementViews(ctx context.Context, listingUid string) error
	ComparablePrices(ctx context.Context, category model.Category) ([]int, error)
	AddPhoto(ctx context.Context, listingUid, owner, path string) (model.ListingPhoto, error)
	GetPhotos(ctx context.Context, listingID int) ([]model.ListingPhoto, error)

	// exchanges
	CreateExchangeRequest(ctx context.Context, listingID int, requester string, req model.ProposeExchangeRequest) (model.ExchangeRequest, error)
	GetExchangeInbox(ctx context.Context, username string) (model.ExchangeInbox, error)
	DecideExchange(ctx context.Context, requestUid, actor string, decision model.Decision) (model.ExchangeRequest, error)

	// evaluations
	CreateEvaluation(ctx context.Context, buyer string, req model.CreateEvaluationRequest) (model.Evaluation, error)
	ListEvaluations(ctx context.Context, seller string, limit int) ([]model.Evaluation, error)

	// users
	EnsureUser(ctx context.Context, username string) error
	GetProfile(ctx context.Context, username string) (model.Profile, error)
	UpdateProfile(ctx context.Context, username string, req model.UpdateProfileRequest) (model.User, error)
	SetAvatar(ctx context.Context, username, path string) error
	CreateVerificationRequest(ctx context.Context, username string, req model.CreateVerificationRequest) (model.VerificationRequest, error)
	DecideVerification(ctx context.Context, id int, decision model.DecisionStatus, reply string, badgeID *int) error
	CreateBadge(ctx context.Context, req model.CreateBadgeRequest) (model.Badge, error)
	ListBadges(ctx context.Context) ([]model.Badge, error)
	CreateItemRequest(ctx context.Context, requester string, req model.CreateItemRequest) (model.ItemRequest, error)
	ListItemRequests(ctx context.Context, requester string) ([]model.ItemRequest, error)
	DecideItemRequest(ctx context.Context, id int, decision model.DecisionStatus, reply string) error

	// messaging
	GetOrCreateConversation(ctx context.Context, me, other string, listingUid *string) (model.Conversation, error)
	ListConversations(ctx context.Context, username string) ([]model.ConversationView, error)
	GetConversationMessages(ctx context.Context, convID int, username string) ([]model.Message, error)
	CreateMessage(ctx context.Context, convID int, sender, content string) (model.Message, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	listingTableName      = `listing`
	listingPhotoTableName = `listing_photo`
	exchangeTableName     = `exchange_request`
	evaluationTableName   = `evaluation`
	usersTableName        = `users`
	badgeTableName        = `badge`
	verificationTableName = `verification_request`
	itemRequestTableName  = `item_request`
	conversationTableName = `conversation`
	messageTableName      = `message`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
