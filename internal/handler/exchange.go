package handler

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/pkg/auth"
)

// ProposeExchange takes a multipart form: the proposed book fields plus
// the mandatory photo attachment.
func (h *Handler) ProposeExchange(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	listingUid := c.Param("listingUid")

	req := model.ProposeExchangeRequest{
		BookTitle:       c.FormValue("bookTitle"),
		BookDescription: c.FormValue("bookDescription"),
		Message:         c.FormValue("message"),
	}

	if fh, err := c.FormFile("photo"); err == nil {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		defer src.Close()
		path, err := h.files.Save(filepath.Join("exchanges", listingUid), filepath.Ext(fh.Filename), src)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		req.BookPhoto = path
	}

	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.svc.ProposeExchange(ctx, listingUid, userName, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) GetExchangeInbox(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	inbox, err := h.svc.GetExchangeInbox(ctx, userName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, inbox)
}

func (h *Handler) AcceptExchange(c echo.Context) error {
	return h.decideExchange(c, model.DecisionAccept)
}

func (h *Handler) RefuseExchange(c echo.Context) error {
	return h.decideExchange(c, model.DecisionRefuse)
}

func (h *Handler) decideExchange(c echo.Context, decision model.Decision) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	requestUid := c.Param("requestUid")
	if requestUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "requestUid is empty")
	}

	res, err := h.svc.DecideExchange(ctx, requestUid, userName, decision)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) CreateEvaluation(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.CreateEvaluationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ev, err := h.svc.CreateEvaluation(ctx, userName, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, ev)
}

func (h *Handler) ListEvaluations(c echo.Context) error {
	ctx := c.Request().Context()
	seller := c.Param("username")
	if seller == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is empty")
	}
	limit := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		var err error
		if limit, err = strconv.Atoi(limitParam); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit is invalid")
		}
	}
	items, err := h.svc.ListEvaluations(ctx, seller, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}
