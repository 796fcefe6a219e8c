package api

import (
	"log/slog"
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	sweepCommands   commands.SweepCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	sweepCommands commands.SweepCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		sweepCommands:   sweepCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Book flight seats
// @Description Reserve 1-10 seats on a flight, optionally choosing seat numbers
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightBookingRequest true "Flight booking request"
// @Success 201 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/flights [post]
func (h *BookingHandler) CreateFlightBooking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.CreateFlightBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.CreateFlightBooking(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary Book a package offer
// @Description Reserve a package for 1-20 persons
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePackageBookingRequest true "Package booking request"
// @Success 201 {object} resdto.BookingStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/packages [post]
func (h *BookingHandler) CreatePackageBooking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.CreatePackageBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.CreatePackageBooking(c.Request.Context(), req.ToInput(userID))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}

// @Summary List my bookings
// @Description Newest first. refresh=true runs a sweep over the caller's bookings before reading.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param archived query bool false "Filter by archive state"
// @Param refresh query bool false "Sweep the caller's records first"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	if q.Refresh {
		// A failed refresh still returns the last committed state
		if _, err := h.sweepCommands.SweepUser(c.Request.Context(), userID); err != nil {
			slog.WarnContext(c.Request.Context(), "refresh sweep failed",
				"user_id", userID, "error", err.Error())
		}
	}

	page, err := h.bookingQueries.ListByUser(c.Request.Context(), userID, q.Archived, q.After, q.Limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondPage(c, page)
}

// @Summary Get booking
// @Description Owners see their own bookings; operators see all
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id, userID, middleware.IsOperator(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel booking
// @Description Cancels a pending or confirmed booking and returns its capacity
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.bookingCommands.CancelBooking(c.Request.Context(), id, userID, middleware.IsOperator(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary List all bookings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param archived query bool false "Filter by archive state"
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingListResponse
// @Router /admin/bookings [get]
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err, "Invalid query parameters")
		return
	}

	page, err := h.bookingQueries.ListAll(c.Request.Context(), q.Archived, q.After, q.Limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respondPage(c, page)
}

// @Summary Confirm booking
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.bookingCommands.ConfirmBooking(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingResult(result))
}

// @Summary Delete booking
// @Description Permanent delete. Held capacity is returned first.
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /admin/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) respondPage(c *gin.Context, page *queries.BookingPage) {
	res, err := resdto.FromBookingPage(page)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
