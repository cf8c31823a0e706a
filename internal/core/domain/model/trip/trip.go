package trip

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created through
	// the NewTrip factory method. This ensures all trips are properly validated.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
)

// Stop is a trip endpoint: a geographic point plus a display address.
type Stop struct {
	Point   kernel.GeoPoint
	Address string
}

// Earnings is the price breakdown recorded once at trip completion.
type Earnings struct {
	BaseAmount  float64
	BonusAmount float64
	TotalAmount float64
}

// RouteSample is one immutable en-route position sample.
type RouteSample struct {
	Point      kernel.GeoPoint
	RecordedAt time.Time
	// Status is the driver's reported availability at sample time.
	Status string
}

// Trip represents a single haul: one driver carrying one load.
// It is an aggregate root created at trip start and closed exactly once
// at completion, at which point distance and earnings are recorded.
//
// Trip follows these invariants:
//   - References exactly one driver and one load, fixed at creation
//   - A started trip implies the driver is on a trip with this load active
//     (enforced by the trip coordinator across aggregates)
//   - End stop, end time, distance, and earnings are set once, at completion
//   - The route is append-only and only grows while the trip is started
type Trip struct {
	// id is the unique identifier for the trip
	id kernel.UUID
	// driverID references the hauling driver
	driverID kernel.UUID
	// loadID references the hauled load
	loadID kernel.UUID
	// status is the current state in the trip lifecycle
	status Status
	// start is where the haul began
	start Stop
	// end is where the haul finished (nil until completion)
	end *Stop
	// startTime is when the haul began
	startTime time.Time
	// endTime is when the haul finished (nil until completion)
	endTime *time.Time
	// distanceKm is the hauled distance, recorded at completion
	distanceKm float64
	// earnings is the price breakdown, recorded at completion (nil before)
	earnings *Earnings
	// route is the append-only sequence of en-route samples
	route []RouteSample

	// isConstructed ensures the trip was created via NewTrip or RestoreTrip
	isConstructed bool
}

// NewTrip creates a new Trip at the moment a driver starts hauling a load.
// This is the only way to create a valid Trip, ensuring all business
// invariants are maintained.
//
// The trip starts Started with startTime stamped to the current time and
// no end stop, distance, or earnings.
//
// Parameters:
//   - id: Unique identifier for the trip (must be valid UUID)
//   - driverID: The hauling driver (must be valid UUID)
//   - loadID: The hauled load (must be valid UUID)
//   - start: Where the haul begins (point must be constructed)
func NewTrip(id kernel.UUID, driverID kernel.UUID, loadID kernel.UUID, start Stop) (*Trip, error) {
	trip := &Trip{
		status:        Started,
		startTime:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		trip.setID(id),
		trip.setDriverID(driverID),
		trip.setLoadID(loadID),
		trip.setStart(start),
	); err != nil {
		return nil, err
	}

	return trip, nil
}

// RestoreTrip reconstructs a Trip aggregate from persistent storage,
// including its completion fields and route. Completion fields must be
// mutually consistent with the status: a completed trip carries an end
// stop, end time, and earnings; a started trip carries none of them.
func RestoreTrip(
	id kernel.UUID,
	driverID kernel.UUID,
	loadID kernel.UUID,
	status Status,
	start Stop,
	end *Stop,
	startTime time.Time,
	endTime *time.Time,
	distanceKm float64,
	earnings *Earnings,
	route []RouteSample,
) (*Trip, error) {
	trip := &Trip{
		isConstructed: true,
	}

	if err := errors.Join(
		trip.setID(id),
		trip.setDriverID(driverID),
		trip.setLoadID(loadID),
		trip.setStart(start),
		trip.setStatus(status, end, endTime, earnings),
	); err != nil {
		return nil, err
	}

	trip.startTime = startTime
	trip.distanceKm = distanceKm
	trip.route = make([]RouteSample, len(route))
	copy(trip.route, route)

	return trip, nil
}

// Validate ensures the Trip instance was properly constructed.
// The zero value of Trip is invalid and will fail this validation.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// DriverID returns the hauling driver's identifier.
func (t *Trip) DriverID() kernel.UUID {
	return t.driverID
}

// LoadID returns the hauled load's identifier.
func (t *Trip) LoadID() kernel.UUID {
	return t.loadID
}

// Status returns the current status of the trip.
func (t *Trip) Status() Status {
	return t.status
}

// Start returns where the haul began.
func (t *Trip) Start() Stop {
	return t.start
}

// End returns where the haul finished. Returns nil until completion.
func (t *Trip) End() *Stop {
	return t.end
}

// StartTime returns when the haul began.
func (t *Trip) StartTime() time.Time {
	return t.startTime
}

// EndTime returns when the haul finished. Returns nil until completion.
func (t *Trip) EndTime() *time.Time {
	return t.endTime
}

// DistanceKm returns the hauled distance. Zero until completion.
func (t *Trip) DistanceKm() float64 {
	return t.distanceKm
}

// Earnings returns the recorded price breakdown. Returns nil until completion.
func (t *Trip) Earnings() *Earnings {
	return t.earnings
}

// Route returns a copy of the en-route samples in append order.
func (t *Trip) Route() []RouteSample {
	out := make([]RouteSample, len(t.route))
	copy(out, t.route)
	return out
}

// Complete closes the trip and records the final figures.
//
// This method enforces the following business rules:
//   - The trip must be Started, so a second completion fails with an
//     InvalidStateTransition error and records nothing
//   - The end stop must carry a constructed point
//   - Distance and earnings amounts must be non-negative
//
// After success the trip is Completed with end stop, end time, distance,
// and earnings all set, never to change again.
func (t *Trip) Complete(end Stop, distanceKm float64, earnings Earnings) error {
	if err := end.Point.Validate(); err != nil {
		return err
	}
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%f is negative", distanceKm))
	}
	if earnings.BaseAmount < 0 || earnings.BonusAmount < 0 || earnings.TotalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings", errors.New("amounts cannot be negative"))
	}

	newStatus, err := t.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	t.status = newStatus
	t.end = &end
	t.endTime = &now
	t.distanceKm = distanceKm
	t.earnings = &earnings
	return nil
}

// AppendRouteSample records an en-route position sample.
//
// Samples can only be appended while the trip is Started; the route of a
// closed trip is immutable.
func (t *Trip) AppendRouteSample(point kernel.GeoPoint, recordedAt time.Time, driverStatus string) error {
	if err := point.Validate(); err != nil {
		return err
	}
	if t.status != Started {
		return errs.NewInvalidStateTransitionError("trip", t.status.String(), Started.String())
	}

	t.route = append(t.route, RouteSample{
		Point:      point,
		RecordedAt: recordedAt,
		Status:     driverStatus,
	})
	return nil
}

// setID validates and sets the trip's unique identifier.
// This is a private method used only during construction.
func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setDriverID validates and sets the hauling driver.
// This is a private method used only during construction.
func (t *Trip) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverID", err)
	}
	t.driverID = driverID
	return nil
}

// setLoadID validates and sets the hauled load.
// This is a private method used only during construction.
func (t *Trip) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadID", err)
	}
	t.loadID = loadID
	return nil
}

// setStart validates and sets the start stop.
// This is a private method used only during construction.
func (t *Trip) setStart(start Stop) error {
	if err := start.Point.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("startLocation", err)
	}
	t.start = start
	return nil
}

// setStatus validates the status together with the completion fields.
// This is a private method used only during restoration.
func (t *Trip) setStatus(status Status, end *Stop, endTime *time.Time, earnings *Earnings) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == Completed && (end == nil || endTime == nil || earnings == nil) {
		return errs.NewValueIsRequiredError("completion fields")
	}
	if status == Started && (end != nil || endTime != nil || earnings != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"completion fields",
			errors.New("started trip cannot carry completion fields"),
		)
	}
	if end != nil {
		if err := end.Point.Validate(); err != nil {
			return err
		}
	}

	t.status = status
	t.end = end
	t.endTime = endTime
	t.earnings = earnings
	return nil
}
