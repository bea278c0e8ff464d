package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/errs"
	md "github.com/videgrenier/marketplace-service/pkg/middleware"
	"github.com/videgrenier/marketplace-service/pkg/storage"
	"github.com/videgrenier/marketplace-service/pkg/validate"
)

type Handler struct {
	svc   MarketplaceService
	files storage.FileStore
	log   *zap.Logger
}

func New(svc MarketplaceService, files storage.FileStore, log *zap.Logger) *Handler {
	return &Handler{
		svc:   svc,
		files: files,
		log:   log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/listings", h.ListListings)
	api.GET("/listings/:listingUid", h.GetListing)
	api.GET("/users/:username", h.GetProfile)
	api.GET("/users/:username/evaluations", h.ListEvaluations)

	authed := api.Group("", md.AuthContext)
	authed.POST("/listings/draft", h.CreateDraft)
	authed.GET("/listings/draft/:draftUid/pricing", h.DraftPricing)
	authed.POST("/listings/draft/:draftUid/confirm", h.ConfirmDraft)
	authed.PUT("/listings/:listingUid", h.UpdateListing)
	authed.POST("/listings/:listingUid/withdraw", h.WithdrawListing)
	authed.POST("/listings/:listingUid/photos", h.AddPhoto)

	authed.POST("/listings/:listingUid/exchange", h.ProposeExchange)
	authed.GET("/exchanges", h.GetExchangeInbox)
	authed.POST("/exchanges/:requestUid/accept", h.AcceptExchange)
	authed.POST("/exchanges/:requestUid/refuse", h.RefuseExchange)

	authed.POST("/evaluations", h.CreateEvaluation)

	authed.PUT("/profile", h.UpdateProfile)
	authed.PUT("/profile/avatar", h.SetAvatar)
	authed.POST("/verification", h.CreateVerificationRequest)
	authed.POST("/item-requests", h.CreateItemRequest)
	authed.GET("/item-requests", h.ListItemRequests)

	authed.GET("/conversations", h.ListConversations)
	authed.POST("/conversations/start", h.StartConversation)
	authed.GET("/conversations/:convID", h.GetConversation)
	authed.POST("/conversations/:convID/messages", h.SendMessage)

	admin := authed.Group("/admin", md.AdminOnly)
	admin.POST("/badges", h.CreateBadge)
	admin.GET("/badges", h.ListBadges)
	admin.POST("/verifications/decide", h.BatchDecideVerifications)
	admin.POST("/item-requests/decide", h.BatchDecideItemRequests)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func httpError(err error) *echo.HTTPError {
	switch {
	case errs.IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrDraftExpired):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
