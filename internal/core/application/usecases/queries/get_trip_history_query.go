package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"

	"freight/internal/pkg/errs"
)

var (
	ErrGetTripHistoryQueryIsNotConstructed = errors.New(
		"GetTripHistoryQuery must be created via NewGetTripHistoryQuery constructor",
	)
)

// GetTripHistoryQuery retrieves a page of one driver's trips, most
// recent first. The driver-facing history screen and payout audits both
// read from this model.
//
// Example:
//
//	query, err := NewGetTripHistoryQuery(driverID, 1, 10)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetTripHistoryQueryHandler(db)
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve trip history: %w", err)
//	}
type GetTripHistoryQuery struct {
	driverID kernel.UUID
	page     int
	limit    int

	isConstructed bool
}

// NewGetTripHistoryQuery creates a query for one driver's trip history.
// page and limit fall back to DefaultPage and DefaultPageLimit when not
// positive; negative values are rejected.
func NewGetTripHistoryQuery(driverID kernel.UUID, page int, limit int) (GetTripHistoryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetTripHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	if page < 0 {
		return GetTripHistoryQuery{}, errs.NewValueIsInvalidError("page")
	}
	if limit < 0 {
		return GetTripHistoryQuery{}, errs.NewValueIsInvalidError("limit")
	}

	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	return GetTripHistoryQuery{
		driverID:      driverID,
		page:          page,
		limit:         limit,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTripHistoryQueryIsNotConstructed if validation fails.
func (q GetTripHistoryQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetTripHistoryQueryIsNotConstructed
	}
	return nil
}

// DriverID returns the driver whose history is requested.
func (q GetTripHistoryQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Page returns the requested page, starting at 1.
func (q GetTripHistoryQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetTripHistoryQuery) Limit() int {
	return q.limit
}

// TripSummary represents one trip in the history read model. Completion
// fields are nil while the trip is still running.
type TripSummary struct {
	ID           kernel.UUID
	LoadID       kernel.UUID
	Status       string
	StartAddress string
	EndAddress   *string
	StartTime    time.Time
	EndTime      *time.Time
	DistanceKm   float64
	Earnings     *float64
}

// GetTripHistoryQueryResponse represents one page of a driver's trips
// plus paging totals.
type GetTripHistoryQueryResponse struct {
	Trips []TripSummary
	Total int64
	Page  int
	Pages int
}
