package load

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrLoadIsNotConstructed is returned when a Load instance was not created through
	// the NewLoad factory method. This ensures all loads are properly validated.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")
)

// Location is a stop on the haul: a geographic point plus postal metadata.
type Location struct {
	Point   kernel.GeoPoint
	Address kernel.Address
}

// Cargo describes what is being shipped.
type Cargo struct {
	Type        string
	WeightTons  float64
	VolumeCubic float64
	Description string
}

// Pricing is the agreed price breakdown for the haul.
type Pricing struct {
	BasePrice  float64
	Commission float64
	TotalPrice float64
}

// Schedule holds the agreed pickup and delivery windows.
type Schedule struct {
	PickupDate     time.Time
	DeliveryDate   time.Time
	FlexibleTiming bool
}

// TrackingEntry is one immutable sample in the load's tracking history.
type TrackingEntry struct {
	Point      kernel.GeoPoint
	RecordedAt time.Time
	Status     Status
}

// Load represents a freight load posted by a shipper.
// It is an aggregate root that manages the load lifecycle from posting
// through assignment and transit to delivery or cancellation.
//
// Load follows these invariants:
//   - Must have valid identifiers, pickup and delivery points, and cargo
//   - Status transitions follow the state machine in Status
//   - A driver is referenced if and only if status is assigned, in_transit,
//     or delivered
//   - Tracking history is append-only
type Load struct {
	// id is the unique identifier for the load
	id kernel.UUID
	// shipperID references the shipper who posted the load
	shipperID kernel.UUID
	// driverID is the assigned driver's ID (nil while pending or cancelled)
	driverID *kernel.UUID
	// status is the current state in the load lifecycle
	status Status
	// pickup is where the haul starts
	pickup Location
	// delivery is where the haul ends
	delivery Location
	// cargo describes the shipment
	cargo Cargo
	// pricing is the agreed price breakdown
	pricing Pricing
	// schedule holds the pickup and delivery windows
	schedule Schedule
	// trackingPoint is the last reported en-route position (nil until first report)
	trackingPoint *kernel.GeoPoint
	// trackingUpdatedAt is when the position was last reported
	trackingUpdatedAt time.Time
	// history is the append-only sequence of tracking samples
	history []TrackingEntry

	// isConstructed ensures the load was created via NewLoad or RestoreLoad
	isConstructed bool
}

// NewLoad creates a new Load posted by a shipper. This is the only way to
// create a valid Load, ensuring all business invariants are maintained.
//
// The load starts Pending with no driver and an empty tracking history.
//
// Parameters:
//   - id: Unique identifier for the load (must be valid UUID)
//   - shipperID: The posting shipper (must be valid UUID)
//   - pickup, delivery: Haul endpoints (points must be constructed)
//   - cargo: Shipment details (type required, weight positive)
//   - pricing: Price breakdown (no component may be negative)
//   - schedule: Pickup and delivery windows (pickup date required)
//
// Returns:
//   - *Load: The created load if all validations pass
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewLoad(
	id kernel.UUID,
	shipperID kernel.UUID,
	pickup Location,
	delivery Location,
	cargo Cargo,
	pricing Pricing,
	schedule Schedule,
) (*Load, error) {
	load := &Load{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		load.setID(id),
		load.setShipperID(shipperID),
		load.setEndpoints(pickup, delivery),
		load.setCargo(cargo),
		load.setPricing(pricing),
		load.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return load, nil
}

// RestoreLoad reconstructs a Load aggregate from persistent storage,
// including its status, assigned driver, and tracking history. The
// driver/status invariant is re-checked so corrupted rows fail loudly
// at load time.
func RestoreLoad(
	id kernel.UUID,
	shipperID kernel.UUID,
	pickup Location,
	delivery Location,
	cargo Cargo,
	pricing Pricing,
	schedule Schedule,
	status Status,
	driverID *kernel.UUID,
	trackingPoint *kernel.GeoPoint,
	trackingUpdatedAt time.Time,
	history []TrackingEntry,
) (*Load, error) {
	load := &Load{
		isConstructed: true,
	}

	if err := errors.Join(
		load.setID(id),
		load.setShipperID(shipperID),
		load.setEndpoints(pickup, delivery),
		load.setCargo(cargo),
		load.setPricing(pricing),
		load.setSchedule(schedule),
		load.setStatus(status, driverID),
		load.setTracking(trackingPoint, trackingUpdatedAt, history),
	); err != nil {
		return nil, err
	}

	return load, nil
}

// Validate ensures the Load instance was properly constructed.
// The zero value of Load is invalid and will fail this validation.
func (l *Load) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLoadIsNotConstructed
	}
	return nil
}

// IsEqual compares two loads by their unique identifiers.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the load's unique identifier.
func (l *Load) ID() kernel.UUID {
	return l.id
}

// ShipperID returns the posting shipper's identifier.
func (l *Load) ShipperID() kernel.UUID {
	return l.shipperID
}

// DriverID returns the assigned driver's ID.
// Returns nil while the load is pending or after cancellation.
func (l *Load) DriverID() *kernel.UUID {
	return l.driverID
}

// Status returns the current status of the load.
func (l *Load) Status() Status {
	return l.status
}

// Pickup returns where the haul starts.
func (l *Load) Pickup() Location {
	return l.pickup
}

// Delivery returns where the haul ends.
func (l *Load) Delivery() Location {
	return l.delivery
}

// Cargo returns the shipment details.
func (l *Load) Cargo() Cargo {
	return l.cargo
}

// Pricing returns the agreed price breakdown.
func (l *Load) Pricing() Pricing {
	return l.pricing
}

// Schedule returns the pickup and delivery windows.
func (l *Load) Schedule() Schedule {
	return l.schedule
}

// TrackingPoint returns the last reported en-route position.
// Returns nil until the first report.
func (l *Load) TrackingPoint() *kernel.GeoPoint {
	return l.trackingPoint
}

// TrackingUpdatedAt returns when the position was last reported.
func (l *Load) TrackingUpdatedAt() time.Time {
	return l.trackingUpdatedAt
}

// TrackingHistory returns a copy of the tracking samples in append order.
func (l *Load) TrackingHistory() []TrackingEntry {
	out := make([]TrackingEntry, len(l.history))
	copy(out, l.history)
	return out
}

// Assign hands the load to a driver and transitions it to Assigned.
//
// This method enforces the following business rules:
//   - The driver ID must be valid
//   - The load must be Pending ("load is not available for assignment"
//     otherwise)
//
// Assignment does not mutate the Driver record: picking up the load and
// occupying the driver is the trip coordinator's job.
func (l *Load) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := l.status.Assign()
	if err != nil {
		return err
	}

	l.status = newStatus
	l.driverID = &driverID
	return nil
}

// UpdateStatus applies a lifecycle transition with an optional tracking sample.
//
// The transition table is enforced; an illegal move fails with an
// InvalidStateTransition error and leaves the load unchanged. Moving to
// Cancelled releases the driver reference.
//
// When point is non-nil the current tracking position is overwritten, its
// timestamp stamped, and exactly one immutable entry appended to the
// history. Prior entries are never touched.
func (l *Load) UpdateStatus(target Status, point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	newStatus, err := l.status.TransitionTo(target)
	if err != nil {
		return err
	}

	l.status = newStatus
	if newStatus == Cancelled {
		l.driverID = nil
	}

	if point != nil {
		now := time.Now().UTC()
		l.trackingPoint = point
		l.trackingUpdatedAt = now
		l.history = append(l.history, TrackingEntry{
			Point:      *point,
			RecordedAt: now,
			Status:     newStatus,
		})
	}

	return nil
}

// setID validates and sets the load's unique identifier.
// This is a private method used only during construction.
func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

// setShipperID validates and sets the posting shipper.
// This is a private method used only during construction.
func (l *Load) setShipperID(shipperID kernel.UUID) error {
	if err := shipperID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipperID", err)
	}
	l.shipperID = shipperID
	return nil
}

// setEndpoints validates and sets the haul endpoints.
// This is a private method used only during construction.
func (l *Load) setEndpoints(pickup Location, delivery Location) error {
	if err := pickup.Point.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupLocation", err)
	}
	if err := delivery.Point.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryLocation", err)
	}

	l.pickup = pickup
	l.delivery = delivery
	return nil
}

// setCargo validates and sets the shipment details.
// This is a private method used only during construction.
func (l *Load) setCargo(cargo Cargo) error {
	if cargo.Type == "" {
		return errs.NewValueIsRequiredError("cargo type")
	}
	if cargo.WeightTons <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cargo weight",
			fmt.Errorf("%f is not greater than 0", cargo.WeightTons),
		)
	}

	l.cargo = cargo
	return nil
}

// setPricing validates and sets the price breakdown.
// This is a private method used only during construction.
func (l *Load) setPricing(pricing Pricing) error {
	if pricing.BasePrice < 0 || pricing.Commission < 0 || pricing.TotalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pricing", errors.New("price components cannot be negative"))
	}

	l.pricing = pricing
	return nil
}

// setSchedule validates and sets the haul windows.
// This is a private method used only during construction.
func (l *Load) setSchedule(schedule Schedule) error {
	if schedule.PickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}

	l.schedule = schedule
	return nil
}

// setStatus validates and sets the status together with the driver
// reference, enforcing the driver/status invariant.
// This is a private method used only during restoration.
func (l *Load) setStatus(status Status, driverID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	requiresDriver := status == Assigned || status == InTransit || status == Delivered
	if requiresDriver && driverID == nil {
		return errs.NewValueIsRequiredError("driverID")
	}
	if !requiresDriver && driverID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"driverID",
			fmt.Errorf("%s is not a valid status to have a driver", status),
		)
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return err
		}
	}

	l.status = status
	l.driverID = driverID
	return nil
}

// setTracking sets the tracking state from persistence.
// This is a private method used only during restoration.
func (l *Load) setTracking(point *kernel.GeoPoint, updatedAt time.Time, history []TrackingEntry) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	l.trackingPoint = point
	l.trackingUpdatedAt = updatedAt
	l.history = make([]TrackingEntry, len(history))
	copy(l.history, history)
	return nil
}
