package response

import (
	"time"

	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type KindStatsResponse struct {
	Total     int `json:"total"`
	Archived  int `json:"archived"`
	Active    int `json:"active"`
	Completed int `json:"completed"`
}

type ArchiveStatsResponse struct {
	Flights  KindStatsResponse `json:"flights"`
	Bookings KindStatsResponse `json:"bookings"`
	Packages KindStatsResponse `json:"packages"`
}

type SweepResponse struct {
	FlightsUpdated   int       `json:"flightsUpdated"`
	FlightsArchived  int       `json:"flightsArchived"`
	BookingsArchived int       `json:"bookingsArchived"`
	BookingsExpired  int       `json:"bookingsExpired"`
	UsersPurged      int       `json:"usersPurged"`
	Failures         int       `json:"failures"`
	StartedAt        time.Time `json:"startedAt"`
	FinishedAt       time.Time `json:"finishedAt"`
}

type BulkFailureResponse struct {
	ID     uuid.UUID `json:"id"`
	Reason string    `json:"reason"`
}

type BulkArchiveResponse struct {
	Archived int                   `json:"archived"`
	Failed   []BulkFailureResponse `json:"failed"`
}

func FromArchiveStats(s *queries.ArchiveStats) (*ArchiveStatsResponse, error) {
	return copyInto[ArchiveStatsResponse](s)
}

func FromSweepResult(r *commands.SweepResult) (*SweepResponse, error) {
	return copyInto[SweepResponse](r)
}

func FromBulkArchiveResult(r *commands.BulkArchiveResult) (*BulkArchiveResponse, error) {
	out, err := copyInto[BulkArchiveResponse](r)
	if err != nil {
		return nil, err
	}
	if out.Failed == nil {
		out.Failed = []BulkFailureResponse{}
	}
	return out, nil
}
