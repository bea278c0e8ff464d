package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	"github.com/videgrenier/marketplace-service/internal/handler"
	service_mocks "github.com/videgrenier/marketplace-service/internal/handler/mocks"
	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/internal/pricing"
	"github.com/videgrenier/marketplace-service/pkg/auth"
	md "github.com/videgrenier/marketplace-service/pkg/middleware"
	"github.com/videgrenier/marketplace-service/pkg/storage"
	"github.com/videgrenier/marketplace-service/pkg/validate"
)

func newListingRouter(t *testing.T, svc *service_mocks.MockMarketplaceService) *echo.Echo {
	t.Helper()
	log := zap.NewExample().Named("test")
	files, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	h := handler.New(svc, files, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.GET("/listings", h.ListListings)
	e.GET("/listings/:listingUid", h.GetListing)

	authed := e.Group("", md.AuthContext)
	authed.POST("/listings/draft", h.CreateDraft)
	authed.GET("/listings/draft/:draftUid/pricing", h.DraftPricing)
	authed.POST("/listings/draft/:draftUid/confirm", h.ConfirmDraft)
	return e
}

func TestHandler_ListListings(t *testing.T) {
	t.Parallel()
	type input struct {
		query      string
		page, size int
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockMarketplaceService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		rawQuery     string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {
				r.EXPECT().
					ListListings(gomock.Any(), model.ListingFilter{Query: inp.query}, inp.page, inp.size).
					Return(model.ListListings{
						Paging: model.Paging{
							Page:          inp.page,
							PageSize:      inp.size,
							TotalElements: 1,
						},
						Items: []model.Listing{
							{
								ListingUid:  "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
								Owner:       "alice",
								Title:       "vintage record player",
								Description: "fully working",
								Price:       4500,
								Category:    model.CategoryMusic,
								Condition:   model.ConditionGood,
								Kind:        model.KindSell,
								Status:      model.ListingAvailable,
								City:        "Douala",
								Views:       3,
							},
						},
					}, nil)
			},
			input:    input{query: "record", page: 1, size: 10},
			rawQuery: "q=record&page=1&size=10",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"listingUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","owner":"alice","title":"vintage record player","description":"fully working","price":4500,"category":"MUSIC","condition":"GOOD","kind":"SELL","status":"AVAILABLE","city":"Douala","region":"","views":3,"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}]}`,
			},
		},
		{
			name:         "err. page invalid",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {},
			rawQuery:     "page=abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {
				r.EXPECT().
					ListListings(gomock.Any(), model.ListingFilter{}, 0, 0).
					Return(model.ListListings{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockMarketplaceService(c)
			e := newListingRouter(t, svc)

			r := httptest.NewRequest(http.MethodGet, "/listings?"+tt.rawQuery, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetListing(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockMarketplaceService(c)
	e := newListingRouter(t, svc)

	const listingUid = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	svc.EXPECT().
		GetListing(gomock.Any(), listingUid).
		Return(model.ListingDetail{}, errs.ErrNotFound)

	r := httptest.NewRequest(http.MethodGet, "/listings/"+listingUid, http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"not found"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_DraftFlow(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockMarketplaceService)

	draftReq := model.ListingDraftRequest{
		Title:       "chess set",
		Description: "wooden pieces",
		Price:       900,
		Category:    model.CategoryOther,
		Condition:   model.ConditionVeryGood,
		Kind:        model.KindSell,
		City:        "Lyon",
	}

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		method       string
		target       string
		body         string
		response     response
	}{
		{
			name: "create draft ok",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					CreateDraft(gomock.Any(), "alice", draftReq).
					Return(model.ListingDraft{
						DraftUid: "d-1",
						Owner:    "alice",
						Fields:   draftReq,
					}, nil)
			},
			method: http.MethodPost,
			target: "/listings/draft",
			body:   `{"title":"chess set","description":"wooden pieces","price":900,"category":"OTHER","condition":"VERY_GOOD","kind":"SELL","city":"Lyon"}`,
			response: response{
				expectedCode: http.StatusCreated,
			},
		},
		{
			name:         "create draft rejects bad category",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {},
			method:       http.MethodPost,
			target:       "/listings/draft",
			body:         `{"title":"chess set","description":"wooden pieces","price":900,"category":"FURNITURE","condition":"VERY_GOOD","kind":"SELL"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "pricing ok",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					DraftPricing(gomock.Any(), "alice", "d-1").
					Return(pricing.Suggestion{
						RecommendedPrice: 850,
						MarketMin:        600,
						MarketMax:        1200,
						Comparables:      4,
						Severity:         pricing.SeveritySuccess,
						Message:          "price within market average",
						SaleLikelihood:   75,
						EstimatedDelay:   "3-5 days",
					}, nil)
			},
			method: http.MethodGet,
			target: "/listings/draft/d-1/pricing",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"recommendedPrice":850,"marketMin":600,"marketMax":1200,"comparables":4,"severity":"success","message":"price within market average","saleLikelihood":75,"estimatedDelay":"3-5 days"}`,
			},
		},
		{
			name: "pricing on expired draft",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					DraftPricing(gomock.Any(), "alice", "d-gone").
					Return(pricing.Suggestion{}, errs.ErrDraftExpired)
			},
			method: http.MethodGet,
			target: "/listings/draft/d-gone/pricing",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"draft session expired"}`,
			},
		},
		{
			name: "confirm ok",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					ConfirmDraft(gomock.Any(), "alice", "d-1", 800).
					Return(model.Listing{
						ListingUid: "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
						Owner:      "alice",
						Title:      "chess set",
						Price:      800,
						Status:     model.ListingAvailable,
					}, nil)
			},
			method: http.MethodPost,
			target: "/listings/draft/d-1/confirm",
			body:   `{"finalPrice":800}`,
			response: response{
				expectedCode: http.StatusCreated,
			},
		},
		{
			name: "confirm rejects book over price cap",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					ConfirmDraft(gomock.Any(), "alice", "d-1", 9000).
					Return(model.Listing{}, errs.ErrBookPriceCap)
			},
			method: http.MethodPost,
			target: "/listings/draft/d-1/confirm",
			body:   `{"finalPrice":9000}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"book price cannot exceed 5000 FCFA"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockMarketplaceService(c)
			e := newListingRouter(t, svc)

			r := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, "alice")
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code, w.Body.String())
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
