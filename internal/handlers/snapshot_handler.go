package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/logger"
	"wealthtrack/internal/services"
)

// SnapshotHandler handles the snapshot trigger called by external schedulers.
type SnapshotHandler struct {
	snapshotService services.SnapshotServicer
}

// NewSnapshotHandler creates a new SnapshotHandler.
func NewSnapshotHandler(snapshotService services.SnapshotServicer) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// TriggerSnapshot values the portfolio and records today's snapshot.
// Failures are reported with a generic body; details go to the log.
// @Summary     Record daily snapshot
// @Description Value all holdings and upsert the snapshot for today (pipeline endpoint)
// @Tags        pipeline
// @Produce     json
// @Param       Authorization header   string                   true "Bearer <CRON_SECRET>"
// @Success     200           {object} services.SnapshotResult "Recorded, or no holdings"
// @Failure     401           {object} ErrorResponse            "Invalid secret"
// @Failure     500           {object} ErrorResponse            "Snapshot failed"
// @Failure     503           {object} ErrorResponse            "Trigger not configured"
// @Router      /pipeline/snapshots [post]
func (h *SnapshotHandler) TriggerSnapshot(c *gin.Context) {
	result, err := h.snapshotService.TriggerSnapshot(c.Request.Context())
	if err != nil {
		logger.Get().Errorw("snapshot trigger failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{
			Code:    apperrors.ErrInternalServer.Code,
			Message: "Failed to record snapshot",
		}})
		return
	}

	c.JSON(http.StatusOK, result)
}
