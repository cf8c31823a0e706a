package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"freight/internal/pkg/errs"
)

var (
	ErrGetLoadsQueryIsNotConstructed = errors.New(
		"GetLoadsQuery must be created via NewGetLoadsQuery constructor",
	)
)

const (
	// DefaultPage is used when the caller does not ask for a specific page.
	DefaultPage = 1
	// DefaultPageLimit caps a result page when no limit is requested.
	DefaultPageLimit = 10
)

// GetLoadsQuery retrieves a page of loads, newest first.
// Both filters are optional: status narrows to one lifecycle stage,
// shipperID narrows to one shipper's postings.
//
// Example:
//
//	status := load.Pending
//	query, err := NewGetLoadsQuery(&status, nil, 1, 20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetLoadsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve loads: %w", err)
//	}
//
//	fmt.Printf("Page %d of %d (%d loads total)\n", page.Page, page.Pages, page.Total)
type GetLoadsQuery struct {
	status    *load.Status
	shipperID *kernel.UUID
	page      int
	limit     int

	isConstructed bool
}

// NewGetLoadsQuery creates a query for a page of loads.
// page and limit fall back to DefaultPage and DefaultPageLimit when not
// positive; negative values are rejected.
func NewGetLoadsQuery(status *load.Status, shipperID *kernel.UUID, page int, limit int) (GetLoadsQuery, error) {
	if page < 0 {
		return GetLoadsQuery{}, errs.NewValueIsInvalidError("page")
	}
	if limit < 0 {
		return GetLoadsQuery{}, errs.NewValueIsInvalidError("limit")
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetLoadsQuery{}, err
		}
	}
	if shipperID != nil {
		if err := shipperID.Validate(); err != nil {
			return GetLoadsQuery{}, err
		}
	}

	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultPageLimit
	}

	return GetLoadsQuery{
		status:        status,
		shipperID:     shipperID,
		page:          page,
		limit:         limit,
		isConstructed: true,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLoadsQueryIsNotConstructed if validation fails.
func (q GetLoadsQuery) Validate() error {
	if !q.isConstructed {
		return ErrGetLoadsQueryIsNotConstructed
	}
	return nil
}

// Status returns the lifecycle filter, or nil.
func (q GetLoadsQuery) Status() *load.Status {
	return q.status
}

// ShipperID returns the shipper filter, or nil.
func (q GetLoadsQuery) ShipperID() *kernel.UUID {
	return q.shipperID
}

// Page returns the requested page, starting at 1.
func (q GetLoadsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetLoadsQuery) Limit() int {
	return q.limit
}

// LoadSummary represents one load in the paginated read model.
type LoadSummary struct {
	ID           kernel.UUID
	ShipperID    kernel.UUID
	DriverID     *kernel.UUID
	Status       string
	PickupCity   string
	DeliveryCity string
	Pickup       kernel.GeoPoint
	Delivery     kernel.GeoPoint
	CargoType    string
	WeightTons   float64
	TotalPrice   float64
	PickupDate   time.Time
	CreatedAt    time.Time
}

// GetLoadsQueryResponse represents one page of loads plus paging totals.
type GetLoadsQueryResponse struct {
	Loads []LoadSummary
	Total int64
	Page  int
	Pages int
}
