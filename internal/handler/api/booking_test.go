//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/inventory"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockSweep    *commandsmock.MockSweepCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
	role         user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockSweep = commandsmock.NewMockSweepCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	s.role = user.RoleViewer

	h := api.NewBookingHandler(s.mockCommands, s.mockSweep, s.mockQueries)

	authed := s.router.Group("")
	authed.Use(func(c *gin.Context) {
		c.Set("user_id", s.userID)
		c.Set("user_role", s.role)
	})
	authed.POST("/bookings/flights", h.CreateFlightBooking)
	authed.POST("/bookings/packages", h.CreatePackageBooking)
	authed.GET("/bookings", h.ListMyBookings)
	authed.GET("/bookings/:id", h.GetBooking)
	authed.POST("/bookings/:id/cancel", h.CancelBooking)
	authed.POST("/admin/bookings/:id/confirm", h.ConfirmBooking)
	authed.DELETE("/admin/bookings/:id", h.DeleteBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateFlightBooking() {
	url := "/bookings/flights"
	b := builder.NewBookingBuilder().OwnedBy(uuid.Nil).WithSeats("12A", "12B")
	reqBody := b.BuildFlightDTO()

	s.Run("success: returns 201 with the pending booking", func() {
		s.mockCommands.EXPECT().CreateFlightBooking(gomock.Any(), reqBody.ToInput(s.userID)).
			Return(&commands.BookingResult{BookingID: b.ID, Reference: b.Reference, Status: booking.StatusPending}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		cases := []struct {
			name   string
			mutate testutil.Mutation
		}{
			{name: "missing flightId", mutate: testutil.Field("flightId", nil)},
			{name: "flightId not a uuid", mutate: testutil.Field("flightId", "abc")},
			{name: "missing passengers", mutate: testutil.Field("passengers", nil)},
			{name: "passenger without name", mutate: testutil.Field("passengers", []map[string]any{{"email": "x@example.com"}, {"name": "B"}})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps domain errors to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{name: "flight not found", err: errs.Mark(errors.New("no rows"), errs.ErrNotFound), status: http.StatusNotFound, msg: "Resource not found"},
			{name: "not enough seats", err: inventory.ErrNotEnoughSeats, status: http.StatusConflict, msg: "Insufficient capacity"},
			{name: "flight departed", err: inventory.ErrFlightDeparted, status: http.StatusConflict, msg: "Conflict"},
			{name: "too many seats", err: booking.ErrInvalidSeatCount, status: http.StatusUnprocessableEntity, msg: "Validation failed"},
			{name: "unexpected", err: errors.New("boom"), status: http.StatusInternalServerError, msg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateFlightBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})

	s.Run("error: seat conflict lists the taken seats", func() {
		s.mockCommands.EXPECT().CreateFlightBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.NewSeatConflict([]string{"12B"}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		body := httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "seat_conflict")

		var detail httperr.SeatConflictDetail
		s.Require().NoError(json.Unmarshal(body.Detail, &detail))
		s.Equal([]string{"12B"}, detail.Seats)
	})
}

func (s *BookingHandlerTestSuite) TestCreatePackageBooking() {
	b := builder.NewBookingBuilder().ForOffer(uuid.New()).WithQuantity(3)
	reqBody := b.BuildPackageDTO()

	s.Run("success: returns 201", func() {
		s.mockCommands.EXPECT().CreatePackageBooking(gomock.Any(), reqBody.ToInput(s.userID)).
			Return(&commands.BookingResult{BookingID: b.ID, Reference: b.Reference, Status: booking.StatusConfirmed}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/packages", reqBody, "")
		var response resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("error: no slots left is 409", func() {
		s.mockCommands.EXPECT().CreatePackageBooking(gomock.Any(), gomock.Any()).Return(nil, inventory.ErrNoAvailableSlots)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/packages", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Insufficient capacity")
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	view := builder.NewBookingBuilder().OwnedBy(s.userID).BuildView()
	page := &queries.BookingPage{Items: []*queries.BookingView{view}}

	s.Run("success: lists without refreshing by default", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, nil, "", 0).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Items, 1)
		s.Equal(view.Reference, response.Items[0].Reference)
		s.Len(response.Items[0].Passengers, view.Quantity)
	})

	s.Run("success: refresh sweeps the caller before reading", func() {
		archived := true
		gomock.InOrder(
			s.mockSweep.EXPECT().SweepUser(gomock.Any(), s.userID).Return(&commands.SweepResult{}, nil),
			s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &archived, "", 0).Return(page, nil),
		)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?refresh=true&archived=true", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: a failed refresh still lists", func() {
		s.mockSweep.EXPECT().SweepUser(gomock.Any(), s.userID).Return(nil, errors.New("db down"))
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, nil, "", 0).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?refresh=true", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: bad cursor is 422", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, nil, "garbage", 0).Return(nil, queries.ErrInvalidCursor)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().OwnedBy(s.userID).BuildView()

	s.Run("success: owner reads own booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.userID, false).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.FlightID, response.FlightID)
	})

	s.Run("success: operators are flagged as such", func() {
		s.role = user.RoleOperator
		defer func() { s.role = user.RoleViewer }()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.userID, true).Return(view, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: someone else's booking is 403", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, s.userID, false).Return(nil, queries.ErrBookingAccess)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id format")
	})
}

func (s *BookingHandlerTestSuite) TestLifecycleTransitions() {
	id := uuid.New()

	s.Run("success: cancel passes the acting user", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, false).
			Return(&commands.BookingResult{BookingID: id, Status: booking.StatusCancelled}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")

		var response resdto.BookingStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
	})

	s.Run("error: cancelling twice is 409", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, false).Return(nil, booking.ErrAlreadyCancelled)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
	})

	s.Run("error: non-owner cancel is 403", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), id, s.userID, false).Return(nil, booking.ErrNotOwner)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+id.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("success: confirm", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).
			Return(&commands.BookingResult{BookingID: id, Status: booking.StatusConfirmed}, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/confirm", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: confirming a cancelled booking is 409", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), id).Return(nil, booking.ErrNotPending)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/bookings/"+id.String()+"/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Conflict")
	})

	s.Run("success: delete returns 204", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/bookings/"+id.String(), nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
