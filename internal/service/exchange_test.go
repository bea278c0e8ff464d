package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/model"
	repo_mocks "github.com/videgrenier/marketplace-service/internal/repository/mocks"
	"github.com/videgrenier/marketplace-service/internal/service"
)

func TestService_ProposeExchange(t *testing.T) {
	t.Parallel()

	const listingUid = "9d3f0d87-14e4-45b1-a6cb-01a546dbb9a4"
	proposal := model.ProposeExchangeRequest{
		BookTitle: "Le petit prince",
		BookPhoto: "exchanges/9d3f0d87/abc.jpg",
	}
	exchangeable := model.Listing{
		ID:         7,
		ListingUid: listingUid,
		Owner:      "alice",
		Category:   model.CategoryBooks,
		Kind:       model.KindExchange,
		Status:     model.ListingAvailable,
	}

	type mockBehavior func(r *repo_mocks.MockRepository)

	var tests = []struct {
		name         string
		requester    string
		req          model.ProposeExchangeRequest
		mockBehavior mockBehavior
		wantErr      error
	}{
		{
			name:      "ok",
			requester: "bob",
			req:       proposal,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetListing(gomock.Any(), listingUid).Return(exchangeable, nil)
				r.EXPECT().EnsureUser(gomock.Any(), "bob").Return(nil)
				r.EXPECT().
					CreateExchangeRequest(gomock.Any(), exchangeable.ID, "bob", proposal).
					Return(model.ExchangeRequest{
						RequestUid: "r-1",
						ListingID:  exchangeable.ID,
						Requester:  "bob",
						Status:     model.RequestPending,
					}, nil)
			},
		},
		{
			name:      "not offered for exchange",
			requester: "bob",
			req:       proposal,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				sale := exchangeable
				sale.Kind = model.KindSell
				r.EXPECT().GetListing(gomock.Any(), listingUid).Return(sale, nil)
			},
			wantErr: errs.ErrNotExchangeable,
		},
		{
			name:      "listing already sold",
			requester: "bob",
			req:       proposal,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				sold := exchangeable
				sold.Status = model.ListingSold
				r.EXPECT().GetListing(gomock.Any(), listingUid).Return(sold, nil)
			},
			wantErr: errs.ErrNotAvailable,
		},
		{
			name:      "own listing",
			requester: "alice",
			req:       proposal,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetListing(gomock.Any(), listingUid).Return(exchangeable, nil)
			},
			wantErr: errs.ErrOwnListing,
		},
		{
			name:      "photo required",
			requester: "bob",
			req:       model.ProposeExchangeRequest{BookTitle: "Le petit prince"},
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetListing(gomock.Any(), listingUid).Return(exchangeable, nil)
			},
			wantErr: errs.ErrPhotoRequired,
		},
		{
			name:      "unknown listing",
			requester: "bob",
			req:       proposal,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetListing(gomock.Any(), listingUid).Return(model.Listing{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			tt.mockBehavior(repo)

			svc := service.NewDefaultService(repo, zap.NewNop())
			res, err := svc.ProposeExchange(context.Background(), listingUid, tt.requester, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.RequestPending, res.Status)
			require.Equal(t, listingUid, res.ListingUid)
		})
	}
}

func TestService_PublishFlow(t *testing.T) {
	t.Parallel()

	fields := model.ListingDraftRequest{
		Title:       "Calculus textbook",
		Description: "3rd edition",
		Price:       3000,
		Category:    model.CategoryBooks,
		Condition:   model.ConditionGood,
		Kind:        model.KindSell,
	}

	t.Run("draft pricing confirm", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewDefaultService(repo, zap.NewNop())
		ctx := context.Background()

		repo.EXPECT().EnsureUser(ctx, "alice").Return(nil)
		draft, err := svc.CreateDraft(ctx, "alice", fields)
		require.NoError(t, err)
		require.NotEmpty(t, draft.DraftUid)

		repo.EXPECT().ComparablePrices(ctx, model.CategoryBooks).Return([]int{1000, 2000, 3000}, nil)
		suggestion, err := svc.DraftPricing(ctx, "alice", draft.DraftUid)
		require.NoError(t, err)
		require.Equal(t, 1400, suggestion.RecommendedPrice)
		require.Equal(t, 3, suggestion.Comparables)

		repo.EXPECT().
			CreateListing(ctx, model.Listing{
				Owner:       "alice",
				Title:       fields.Title,
				Description: fields.Description,
				Price:       1400,
				Category:    fields.Category,
				Condition:   fields.Condition,
				Kind:        fields.Kind,
			}).
			Return(model.Listing{ListingUid: "l-1", Status: model.ListingAvailable}, nil)
		listing, err := svc.ConfirmDraft(ctx, "alice", draft.DraftUid, 1400)
		require.NoError(t, err)
		require.Equal(t, model.ListingAvailable, listing.Status)

		// a draft is consumed on confirm
		_, err = svc.ConfirmDraft(ctx, "alice", draft.DraftUid, 1400)
		require.ErrorIs(t, err, errs.ErrDraftExpired)
	})

	t.Run("exchange drafts are books only", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewDefaultService(repo, zap.NewNop())

		bad := fields
		bad.Category = model.CategoryElectronics
		bad.Kind = model.KindExchange
		_, err := svc.CreateDraft(context.Background(), "alice", bad)
		require.ErrorIs(t, err, errs.ErrExchangeBooksOnly)
	})

	t.Run("book price cap applies to the final price", func(t *testing.T) {
		t.Parallel()
		c := gomock.NewController(t)
		defer c.Finish()
		repo := repo_mocks.NewMockRepository(c)
		svc := service.NewDefaultService(repo, zap.NewNop())
		ctx := context.Background()

		repo.EXPECT().EnsureUser(ctx, "alice").Return(nil)
		draft, err := svc.CreateDraft(ctx, "alice", fields)
		require.NoError(t, err)

		_, err = svc.ConfirmDraft(ctx, "alice", draft.DraftUid, model.BookPriceCap+1)
		require.ErrorIs(t, err, errs.ErrBookPriceCap)
	})
}

func TestService_CreateEvaluation(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewDefaultService(repo, zap.NewNop())

	_, err := svc.CreateEvaluation(context.Background(), "alice", model.CreateEvaluationRequest{
		Seller: "alice",
		Stars:  5,
	})
	require.ErrorIs(t, err, errs.ErrSelfEvaluation)
}

func TestService_BatchDecide(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := service.NewDefaultService(repo, zap.NewNop())

	req := model.BatchDecideRequest{
		IDs:        []int{1, 2, 3},
		Decision:   model.DecisionApproved,
		AdminReply: "welcome",
	}
	repo.EXPECT().
		DecideVerification(gomock.Any(), 1, model.DecisionApproved, "welcome", nil).
		Return(nil)
	repo.EXPECT().
		DecideVerification(gomock.Any(), 2, model.DecisionApproved, "welcome", nil).
		Return(errs.ErrNotFound)
	repo.EXPECT().
		DecideVerification(gomock.Any(), 3, model.DecisionApproved, "welcome", nil).
		Return(nil)

	res, err := svc.BatchDecideVerifications(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 2, res.Decided)
	require.Equal(t, []int{2}, res.Failed)
}
