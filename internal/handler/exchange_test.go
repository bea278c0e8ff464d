package handler_test

import (
	"fmt"
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
	"github.com/videgrenier/marketplace-service/pkg/auth"
	md "github.com/videgrenier/marketplace-service/pkg/middleware"
	"github.com/videgrenier/marketplace-service/pkg/storage"
	"github.com/videgrenier/marketplace-service/pkg/validate"
)

func newTestRouter(t *testing.T, svc *service_mocks.MockMarketplaceService) *echo.Echo {
	t.Helper()
	log := zap.NewExample().Named("test")
	files, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	h := handler.New(svc, files, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()

	authed := e.Group("", md.AuthContext)
	authed.POST("/exchanges/:requestUid/accept", h.AcceptExchange)
	authed.POST("/exchanges/:requestUid/refuse", h.RefuseExchange)
	authed.POST("/evaluations", h.CreateEvaluation)
	authed.GET("/exchanges", h.GetExchangeInbox)
	return e
}

func TestHandler_AcceptExchange(t *testing.T) {
	t.Parallel()
	type input struct {
		requestUid string
		userName   string
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
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {
				r.EXPECT().
					DecideExchange(gomock.Any(), inp.requestUid, inp.userName, model.DecisionAccept).
					Return(model.ExchangeRequest{
						RequestUid: inp.requestUid,
						ListingUid: "9d3f0d87-14e4-45b1-a6cb-01a546dbb9a4",
						Requester:  "bob",
						BookTitle:  "Le petit prince",
						Status:     model.RequestAccepted,
					}, nil)
			},
			input: input{
				requestUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				userName:   "alice",
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"requestUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","listingUid":"9d3f0d87-14e4-45b1-a6cb-01a546dbb9a4","requester":"bob","bookTitle":"Le petit prince","bookDescription":"","bookPhoto":"","message":"","status":"ACCEPTED","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. not the owner",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {
				r.EXPECT().
					DecideExchange(gomock.Any(), inp.requestUid, inp.userName, model.DecisionAccept).
					Return(model.ExchangeRequest{}, errs.ErrForbidden)
			},
			input: input{
				requestUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				userName:   "mallory",
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"forbidden"}`,
			},
		},
		{
			name: "err. unknown or already decided",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {
				r.EXPECT().
					DecideExchange(gomock.Any(), inp.requestUid, inp.userName, model.DecisionAccept).
					Return(model.ExchangeRequest{}, errs.ErrNotFound)
			},
			input: input{
				requestUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				userName:   "alice",
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name: "err. listing no longer available",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {
				r.EXPECT().
					DecideExchange(gomock.Any(), inp.requestUid, inp.userName, model.DecisionAccept).
					Return(model.ExchangeRequest{}, errors.Wrap(errs.ErrConflict, errs.ErrNotAvailable.Error()))
			},
			input: input{
				requestUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				userName:   "alice",
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"listing is no longer available: conflict"}`,
			},
		},
		{
			name:         "err. no identity",
			mockBehavior: func(r *service_mocks.MockMarketplaceService, inp input) {},
			input: input{
				requestUid: "83575e12-7ce0-48ee-9931-51919ff3c9ee",
				userName:   "",
			},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-name is empty"}`,
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
			e := newTestRouter(t, svc)

			r := httptest.NewRequest(
				http.MethodPost, fmt.Sprintf("/exchanges/%s/accept", tt.input.requestUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.userName != "" {
				r.Header.Set(auth.XUserNameHeader, tt.input.userName)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_RefuseExchange(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockMarketplaceService(c)
	e := newTestRouter(t, svc)

	const requestUid = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	svc.EXPECT().
		DecideExchange(gomock.Any(), requestUid, "alice", model.DecisionRefuse).
		Return(model.ExchangeRequest{
			RequestUid: requestUid,
			ListingUid: "9d3f0d87-14e4-45b1-a6cb-01a546dbb9a4",
			Requester:  "bob",
			BookTitle:  "Le petit prince",
			Status:     model.RequestRefused,
		}, nil)

	r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/exchanges/%s/refuse", requestUid), http.NoBody)
	r.Header.Set(auth.XUserNameHeader, "alice")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"REFUSED"`)
}

func TestHandler_CreateEvaluation(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockMarketplaceService)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					CreateEvaluation(gomock.Any(), "bob", model.CreateEvaluationRequest{
						Seller:  "alice",
						Stars:   5,
						Comment: "quick handover",
					}).
					Return(model.Evaluation{
						Seller:  "alice",
						Buyer:   "bob",
						Stars:   5,
						Comment: "quick handover",
					}, nil)
			},
			body: `{"seller":"alice","stars":5,"comment":"quick handover"}`,
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"seller":"alice","buyer":"bob","stars":5,"comment":"quick handover","createdAt":"0001-01-01T00:00:00Z"}`,
			},
		},
		{
			name: "err. self evaluation",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					CreateEvaluation(gomock.Any(), "bob", model.CreateEvaluationRequest{
						Seller: "bob",
						Stars:  4,
					}).
					Return(model.Evaluation{}, errs.ErrSelfEvaluation)
			},
			body: `{"seller":"bob","stars":4}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"cannot evaluate yourself"}`,
			},
		},
		{
			name: "err. already evaluated",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {
				r.EXPECT().
					CreateEvaluation(gomock.Any(), "bob", model.CreateEvaluationRequest{
						Seller: "alice",
						Stars:  3,
					}).
					Return(model.Evaluation{}, errors.Wrap(errs.ErrConflict, "already evaluated"))
			},
			body: `{"seller":"alice","stars":3}`,
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"already evaluated: conflict"}`,
			},
		},
		{
			name:         "err. stars out of range",
			mockBehavior: func(r *service_mocks.MockMarketplaceService) {},
			body:         `{"seller":"alice","stars":6}`,
			response: response{
				expectedCode: http.StatusBadRequest,
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
			e := newTestRouter(t, svc)

			r := httptest.NewRequest(http.MethodPost, "/evaluations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(auth.XUserNameHeader, "bob")
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetExchangeInbox(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockMarketplaceService(c)
	e := newTestRouter(t, svc)

	svc.EXPECT().
		GetExchangeInbox(gomock.Any(), "alice").
		Return(model.ExchangeInbox{
			Received: []model.ExchangeRequest{{RequestUid: "r-1", Requester: "bob", Status: model.RequestPending}},
			Sent:     []model.ExchangeRequest{},
		}, nil)

	r := httptest.NewRequest(http.MethodGet, "/exchanges", http.NoBody)
	r.Header.Set(auth.XUserNameHeader, "alice")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"requester":"bob"`)
	require.Contains(t, w.Body.String(), `"sent":[]`)
}
