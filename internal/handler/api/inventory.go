package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryCommands commands.InventoryCommands
	inventoryQueries  queries.InventoryQueries
}

func NewInventoryHandler(inventoryCommands commands.InventoryCommands, inventoryQueries queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{
		inventoryCommands: inventoryCommands,
		inventoryQueries:  inventoryQueries,
	}
}

// @Summary List flights
// @Description Archived flights are listed for operators only
// @Tags inventory
// @Produce json
// @Success 200 {array} resdto.FlightResponse
// @Router /flights [get]
func (h *InventoryHandler) ListFlights(c *gin.Context) {
	views, err := h.inventoryQueries.ListFlights(c.Request.Context(), middleware.IsOperator(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromFlightViews(views)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get flight
// @Tags inventory
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} resdto.FlightResponse
// @Failure 404 {object} httperr.Response
// @Router /flights/{id} [get]
func (h *InventoryHandler) GetFlight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.inventoryQueries.GetFlight(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromFlightView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List package offers
// @Description Hidden and archived offers are listed for operators only
// @Tags inventory
// @Produce json
// @Success 200 {array} resdto.OfferResponse
// @Router /packages [get]
func (h *InventoryHandler) ListOffers(c *gin.Context) {
	views, err := h.inventoryQueries.ListOffers(c.Request.Context(), middleware.IsOperator(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromOfferViews(views)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get package offer
// @Tags inventory
// @Produce json
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.OfferResponse
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [get]
func (h *InventoryHandler) GetOffer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.inventoryQueries.GetOffer(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := resdto.FromOfferView(view)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create flight
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateFlightRequest true "Flight"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/flights [post]
func (h *InventoryHandler) CreateFlight(c *gin.Context) {
	var req reqdto.CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	id, err := h.inventoryCommands.CreateFlight(c.Request.Context(), req.ToParams())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Change flight status
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Param request body reqdto.ChangeFlightStatusRequest true "Status"
// @Success 204 "No Content"
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/flights/{id}/status [post]
func (h *InventoryHandler) ChangeFlightStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeFlightStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	status, err := req.ToStatus()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err = h.inventoryCommands.ChangeFlightStatus(c.Request.Context(), id, status); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete flight
// @Description Refused while active bookings reference the flight
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Flight ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/flights/{id} [delete]
func (h *InventoryHandler) DeleteFlight(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryCommands.DeleteFlight(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create package offer
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/packages [post]
func (h *InventoryHandler) CreateOffer(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	id, err := h.inventoryCommands.CreateOffer(c.Request.Context(), params)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Delete package offer
// @Description Refused while active bookings reference the offer
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/packages/{id} [delete]
func (h *InventoryHandler) DeleteOffer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.inventoryCommands.DeleteOffer(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
