package httperr

import (
	"net/http"

	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// SeatConflictDetail lists the seats another booking already holds.
type SeatConflictDetail struct {
	Seats []string `json:"seats"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	if code := errs.Code(err); code != "internal" || status >= http.StatusInternalServerError {
		resp.Error.Code = code
	}
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError maps the domain error taxonomy onto a status code. Internal
// failures get a generic message; the cause stays in c.Errors for logging.
func FromError(c *gin.Context, err error) {
	if seats, ok := errs.ConflictingSeats(err); ok {
		AbortWithError(c, http.StatusConflict, err, "Seats already taken", SeatConflictDetail{Seats: seats})
		return
	}

	switch {
	case errs.Is(err, errs.ErrNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errs.Is(err, errs.ErrInsufficientCapacity):
		AbortWithError(c, http.StatusConflict, err, "Insufficient capacity", publicDetail(err))
	case errs.Is(err, errs.ErrIllegalTransition),
		errs.Is(err, errs.ErrInventoryInUse),
		errs.Is(err, errs.ErrInventoryUnavailable):
		AbortWithError(c, http.StatusConflict, err, "Conflict", publicDetail(err))
	case errs.Is(err, errs.ErrValidation):
		AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", publicDetail(err))
	case errs.Is(err, errs.ErrUnauthorized):
		AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// publicDetail exposes only sentinel messages. Wrapping context and
// storage text stay in c.Errors.
func publicDetail(err error) any {
	if msg, ok := errs.Public(err); ok {
		return msg
	}
	return nil
}

// BadRequest is for malformed input caught before reaching a use case.
func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
