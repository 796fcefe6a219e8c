package api

import (
	"net/http"

	"travel-booking/internal/domain/archive"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	archiveCommands commands.ArchiveCommands
	sweepCommands   commands.SweepCommands
	archiveQueries  queries.ArchiveQueries
}

func NewArchiveHandler(
	archiveCommands commands.ArchiveCommands,
	sweepCommands commands.SweepCommands,
	archiveQueries queries.ArchiveQueries,
) *ArchiveHandler {
	return &ArchiveHandler{
		archiveCommands: archiveCommands,
		sweepCommands:   sweepCommands,
		archiveQueries:  archiveQueries,
	}
}

func pathKind(c *gin.Context) (archive.Kind, bool) {
	kind, err := archive.NewKind(c.Param("kind"))
	if err != nil {
		httperr.BadRequest(c, err, "Unknown record kind")
		return "", false
	}
	return kind, true
}

// @Summary Run archival sweep
// @Description Runs one sweep now. 409 when another sweep holds the lock.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Failure 409 {object} httperr.Response
// @Router /admin/archive/sweep [post]
func (h *ArchiveHandler) RunSweep(c *gin.Context) {
	result, err := h.sweepCommands.RunSweep(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromSweepResult(result)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Archive a record
// @Description Archives one record with reason manual, bypassing the sweep rules
// @Tags admin
// @Security BearerAuth
// @Param kind path string true "flight, package, booking or user"
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/archive/{kind}/{id} [post]
func (h *ArchiveHandler) ArchiveManually(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.archiveCommands.ArchiveManually(c.Request.Context(), kind, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Restore an archived record
// @Tags admin
// @Security BearerAuth
// @Param kind path string true "flight, package, booking or user"
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/archive/{kind}/{id}/restore [post]
func (h *ArchiveHandler) Restore(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.archiveCommands.Restore(c.Request.Context(), kind, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Archive many records
// @Description Per-id outcome; one failure does not stop the rest
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "flight, package, booking or user"
// @Param request body reqdto.BulkArchiveRequest true "IDs"
// @Success 200 {object} resdto.BulkArchiveResponse
// @Failure 422 {object} httperr.Response
// @Router /admin/archive/{kind}/bulk [post]
func (h *ArchiveHandler) BulkArchive(c *gin.Context) {
	kind, ok := pathKind(c)
	if !ok {
		return
	}
	var req reqdto.BulkArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.archiveCommands.BulkArchive(c.Request.Context(), kind, req.IDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromBulkArchiveResult(result)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Archive statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ArchiveStatsResponse
// @Router /admin/archive/stats [get]
func (h *ArchiveHandler) Stats(c *gin.Context) {
	stats, err := h.archiveQueries.GetArchiveStats(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromArchiveStats(stats)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
