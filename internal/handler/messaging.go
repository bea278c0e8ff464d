package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/videgrenier/marketplace-service/internal/model"
	"github.com/videgrenier/marketplace-service/pkg/auth"
)

func (h *Handler) ListConversations(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	convs, err := h.svc.ListConversations(ctx, userName)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, convs)
}

func (h *Handler) StartConversation(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req model.StartConversationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	conv, err := h.svc.StartConversation(ctx, userName, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, conv)
}

func (h *Handler) GetConversation(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	convID, err := strconv.Atoi(c.Param("convID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "convID is invalid")
	}

	msgs, err := h.svc.GetConversationMessages(ctx, convID, userName)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, msgs)
}

func (h *Handler) SendMessage(c echo.Context) error {
	ctx := c.Request().Context()
	userName, err := auth.GetUserName(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	convID, err := strconv.Atoi(c.Param("convID"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "convID is invalid")
	}

	var req model.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := h.svc.SendMessage(ctx, convID, userName, req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, msg)
}
