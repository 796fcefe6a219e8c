package queries

import "context"

type ArchiveQueries interface {
	GetArchiveStats(ctx context.Context) (*ArchiveStats, error)
}

// ArchiveStatsReadStore computes the counters on demand.
type ArchiveStatsReadStore interface {
	FlightStats(ctx context.Context) (KindStats, error)
	BookingStats(ctx context.Context) (KindStats, error)
	PackageStats(ctx context.Context) (KindStats, error)
}

type archiveQueriesImpl struct {
	readStore ArchiveStatsReadStore
}

func NewArchiveQueries(readStore ArchiveStatsReadStore) ArchiveQueries {
	return &archiveQueriesImpl{readStore: readStore}
}

func (q *archiveQueriesImpl) GetArchiveStats(ctx context.Context) (*ArchiveStats, error) {
	flights, err := q.readStore.FlightStats(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := q.readStore.BookingStats(ctx)
	if err != nil {
		return nil, err
	}
	packages, err := q.readStore.PackageStats(ctx)
	if err != nil {
		return nil, err
	}
	return &ArchiveStats{Flights: flights, Bookings: bookings, Packages: packages}, nil
}
