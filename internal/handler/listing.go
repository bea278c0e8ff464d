package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/pkg/auth"
)

func (h *Handler) ListListings(c echo.Context) error {
	ctx := c.Request().Context()

	filter := model.ListingFilter{
		Query:    c.QueryParam("q"),
		Category: model.Category(c.QueryParam("category")),
		Kind:     model.TransactionKind(c.QueryParam("kind")),
		Region:   c.QueryParam("region"),
	}
	var (
		err  error
		page int
		size int
	)
	if pageParam := c.QueryParam("page"); pageParam != "" {
		if page, err = strconv.Atoi(pageParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("page is invalid"))
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.New("size is invalid"))
		}
	}

	listings, err := h.svc.ListListings(ctx, filter, page, size)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, listings)
}

func (h *Handler) GetListing(c echo.Context) error {
	listingUid := c.Param("listingUid")
	if listingUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, errors.New("empty listingUid"))
	}
	detail, err := h.svc.GetListing(c.Request().Context(), listingUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) CreateDraft(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.ListingDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	draft, err := h.svc.CreateDraft(ctx, userName, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, draft)
}

func (h *Handler) DraftPricing(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	suggestion, err := h.svc.DraftPricing(ctx, userName, c.Param("draftUid"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, suggestion)
}

func (h *Handler) ConfirmDraft(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.ConfirmListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.svc.ConfirmDraft(ctx, userName, c.Param("draftUid"), req.FinalPrice)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, listing)
}

func (h *Handler) UpdateListing(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.ListingDraftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.svc.UpdateListing(ctx, userName, c.Param("listingUid"), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, listing)
}

func (h *Handler) WithdrawListing(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	if err := h.svc.WithdrawListing(ctx, userName, c.Param("listingUid")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) AddPhoto(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	listingUid := c.Param("listingUid")

	fh, err := c.FormFile("photo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "photo is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer src.Close()

	path, err := h.files.Save(filepath.Join("articles", listingUid), filepath.Ext(fh.Filename), src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	photo, err := h.svc.AddPhoto(ctx, listingUid, userName, path)
	if err != nil {
		if rmErr := h.files.Remove(path); rmErr != nil {
			h.log.Warn("orphan photo cleanup", zap.Error(rmErr))
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, photo)
}
