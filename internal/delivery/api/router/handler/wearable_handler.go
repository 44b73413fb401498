package handler

import (
	"net/http"

	"wearsync/internal/delivery/api/response"
	"wearsync/internal/errors"
	"wearsync/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WearableHandlerParams holds dependencies for WearableHandler, injected by Fx.
type WearableHandlerParams struct {
	fx.In

	ConnectionUC usecase.ConnectionUsecase
	SyncUC       usecase.SyncUsecase
}

// WearableHandler serves connection status and daily sync.
type WearableHandler struct {
	connectionUC usecase.ConnectionUsecase
	syncUC       usecase.SyncUsecase
}

// NewWearableHandler is the constructor for WearableHandler
func NewWearableHandler(params WearableHandlerParams) *WearableHandler {
	return &WearableHandler{
		connectionUC: params.ConnectionUC,
		syncUC:       params.SyncUC,
	}
}

// StatusResponse is keyed by provider name.
type StatusResponse struct {
	Fitbit *usecase.ConnectionStatus `json:"fitbit"`
}

// SyncDailyRequest represents the request body for a daily sync
type SyncDailyRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Date   string `json:"date" validate:"required,isodate"`
}

// Status handles GET /api/wearables/status?user_id=
// Status and SyncDaily answer with the bare payload; only errors use the envelope.
func (h *WearableHandler) Status(c echo.Context) error {
	status, err := h.connectionUC.GetStatus(c.Request().Context(), c.QueryParam("user_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, StatusResponse{Fitbit: status})
}

// SyncDaily handles POST /sync/fitbit/daily
func (h *WearableHandler) SyncDaily(c echo.Context) error {
	var req SyncDailyRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sync request body")
	}

	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.syncUC.ReconcileDay(c.Request().Context(), req.UserID, req.Date)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
