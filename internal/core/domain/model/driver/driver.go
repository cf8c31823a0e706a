package driver

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrLicenseNumberIsRequired is returned when attempting to create a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrActiveLoadIsSet is returned when beginning a trip while a load is already active.
	ErrActiveLoadIsSet = errors.New("driver already has an active load")
)

// Vehicle describes the truck a driver operates.
// Registration numbers are unique across the marketplace.
type Vehicle struct {
	Type               string
	RegistrationNumber string
	// CapacityTons is the maximum cargo weight the vehicle can carry.
	CapacityTons float64
}

// Payout records the last payout drawn against a driver's pending earnings.
type Payout struct {
	Amount float64
	Date   time.Time
}

// Earnings is the driver's running ledger. Total and PendingPayouts only
// grow; payout draws are out of scope for the core.
type Earnings struct {
	Total          float64
	PendingPayouts float64
	LastPayout     *Payout
}

// Driver represents a freight driver in the marketplace.
// It is an aggregate root that manages driver identity, availability,
// current location, and the running earnings ledger.
//
// Key responsibilities:
//   - Managing driver identity (ID, owning user, license, vehicle)
//   - Tracking the current location with a staleness guard
//   - Enforcing the availability state machine
//   - Holding the active load reference while on a trip
//   - Crediting trip earnings exactly once per completed trip
//
// Business rules:
//   - Driver must have valid IDs, a license number, and a registered vehicle
//   - Status is OnTrip if and only if an active load is set
//   - A driver on a trip cannot change status except by finishing the trip
//   - Earnings totals never decrease
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// userID references the owning user identity (unique per driver)
	userID kernel.UUID
	// licenseNumber is the driver's unique license
	licenseNumber string
	// licenseExpiry is when the license stops being valid
	licenseExpiry time.Time
	// experienceYears is the driver's years of freight experience
	experienceYears int
	// vehicle is the registered truck
	vehicle Vehicle
	// location is the last reported position
	location kernel.GeoPoint
	// locationUpdatedAt is when the position was last reported
	locationUpdatedAt time.Time
	// status is the current availability state
	status Status
	// activeLoadID references the load being hauled (nil unless on a trip)
	activeLoadID *kernel.UUID
	// earnings is the running ledger
	earnings Earnings

	// isConstructed ensures the driver was created via NewDriver or RestoreDriver
	isConstructed bool
}

// NewDriver creates a new Driver at onboarding time.
// This is the only way to create a fresh Driver instance, ensuring all
// business invariants are maintained.
//
// The driver starts Offline with no active load and a zero earnings
// ledger; the initial location is stamped with the current time.
//
// Parameters:
//   - id: Unique identifier for the driver (must be valid UUID)
//   - userID: Owning user identity (must be valid UUID)
//   - licenseNumber: Unique license number (must be non-empty)
//   - licenseExpiry: License expiry date (must not be zero)
//   - experienceYears: Years of experience (must be non-negative)
//   - vehicle: Registered vehicle (type and registration required, capacity positive)
//   - location: Initial position (must be a constructed GeoPoint)
//
// Returns:
//   - *Driver: A fully initialized driver, Offline, ready for activation
//   - error: Validation error if any parameter is invalid (aggregated for multiple issues)
func NewDriver(
	id kernel.UUID,
	userID kernel.UUID,
	licenseNumber string,
	licenseExpiry time.Time,
	experienceYears int,
	vehicle Vehicle,
	location kernel.GeoPoint,
) (*Driver, error) {
	driver := &Driver{
		status:        Offline,
		isConstructed: true,
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setUserID(userID),
		driver.setLicense(licenseNumber, licenseExpiry),
		driver.setExperienceYears(experienceYears),
		driver.setVehicle(vehicle),
		driver.setLocation(location, time.Now().UTC()),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage.
// Unlike NewDriver which creates fresh offline drivers, this constructor
// restores a driver to its previously persisted state, including status,
// active load, and the earnings ledger.
//
// The restored driver behaves identically to one mutated through normal
// domain operations. The OnTrip/activeLoad invariant is re-checked so
// corrupted rows fail loudly at load time.
func RestoreDriver(
	id kernel.UUID,
	userID kernel.UUID,
	licenseNumber string,
	licenseExpiry time.Time,
	experienceYears int,
	vehicle Vehicle,
	location kernel.GeoPoint,
	locationUpdatedAt time.Time,
	status Status,
	activeLoadID *kernel.UUID,
	earnings Earnings,
) (*Driver, error) {
	driver := &Driver{
		isConstructed: true,
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setUserID(userID),
		driver.setLicense(licenseNumber, licenseExpiry),
		driver.setExperienceYears(experienceYears),
		driver.setVehicle(vehicle),
		driver.setLocation(location, locationUpdatedAt),
		driver.setStatus(status, activeLoadID),
		driver.setEarnings(earnings),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed.
// The zero value of Driver is invalid and will fail this validation.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// UserID returns the owning user identity.
func (d *Driver) UserID() kernel.UUID {
	return d.userID
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// LicenseExpiry returns the license expiry date.
func (d *Driver) LicenseExpiry() time.Time {
	return d.licenseExpiry
}

// ExperienceYears returns the driver's years of freight experience.
func (d *Driver) ExperienceYears() int {
	return d.experienceYears
}

// Vehicle returns the registered vehicle.
func (d *Driver) Vehicle() Vehicle {
	return d.vehicle
}

// Location returns the last reported position.
func (d *Driver) Location() kernel.GeoPoint {
	return d.location
}

// LocationUpdatedAt returns when the position was last reported.
func (d *Driver) LocationUpdatedAt() time.Time {
	return d.locationUpdatedAt
}

// Status returns the current availability state.
func (d *Driver) Status() Status {
	return d.status
}

// ActiveLoadID returns the load the driver is currently hauling.
// Returns nil unless the driver is on a trip.
func (d *Driver) ActiveLoadID() *kernel.UUID {
	return d.activeLoadID
}

// Earnings returns a copy of the running earnings ledger.
func (d *Driver) Earnings() Earnings {
	return d.earnings
}

// UpdateLocation records a newly reported position.
//
// Updates are last-write-wins, guarded against reordering: a report whose
// recordedAt is older than the currently stored timestamp is silently
// ignored so a delayed sample cannot overwrite a newer one.
//
// Parameters:
//   - point: The reported position (must be a constructed GeoPoint)
//   - recordedAt: When the position was sampled; callers without a client
//     timestamp pass the current time
//
// Returns:
//   - bool: true if the location was applied, false if the report was stale
//   - error: Validation error if the point is invalid
func (d *Driver) UpdateLocation(point kernel.GeoPoint, recordedAt time.Time) (bool, error) {
	if err := point.Validate(); err != nil {
		return false, err
	}

	if recordedAt.Before(d.locationUpdatedAt) {
		return false, nil
	}

	d.location = point
	d.locationUpdatedAt = recordedAt
	return true, nil
}

// ChangeStatus applies a manually requested availability change.
//
// Activation (Offline|Maintenance -> Available) and deactivation
// (any non-trip state -> Offline|Maintenance) are permitted; anything
// involving OnTrip is rejected: trips are entered and left only through
// BeginTrip and FinishTrip.
//
// Returns:
//   - nil on success (a same-status request is a no-op)
//   - InvalidStateTransition error if the change is not permitted
func (d *Driver) ChangeStatus(target Status) error {
	newStatus, err := d.status.ChangeTo(target)
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// BeginTrip moves the driver onto a trip hauling the given load.
//
// This method enforces the following business rules:
//   - The load ID must be valid
//   - The driver must be Available
//   - No active load may already be set
//
// After success the driver is OnTrip and ActiveLoadID returns the load.
func (d *Driver) BeginTrip(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return err
	}

	if d.activeLoadID != nil {
		return errs.NewValueIsInvalidErrorWithCause("activeLoad", ErrActiveLoadIsSet)
	}

	newStatus, err := d.status.BeginTrip()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.activeLoadID = &loadID
	return nil
}

// FinishTrip completes the driver's current trip and credits the earnings.
//
// This method enforces the following business rules:
//   - The driver must be OnTrip
//   - The credited amount must be non-negative
//
// After success the driver is Available, the active load is cleared, and
// both earnings.Total and earnings.PendingPayouts have grown by amount.
// The credit happens exactly once per trip; the trip coordinator guards
// against double completion.
func (d *Driver) FinishTrip(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings", fmt.Errorf("%f is negative", amount))
	}

	newStatus, err := d.status.FinishTrip()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.activeLoadID = nil
	d.earnings.Total += amount
	d.earnings.PendingPayouts += amount
	return nil
}

// setID validates and sets the driver's unique identifier.
// This is a private method used only during construction.
func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setUserID validates and sets the owning user identity.
// This is a private method used only during construction.
func (d *Driver) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	d.userID = userID
	return nil
}

// setLicense validates and sets the license number and expiry.
// This is a private method used only during construction.
func (d *Driver) setLicense(number string, expiry time.Time) error {
	if number == "" {
		return ErrLicenseNumberIsRequired
	}
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("licenseExpiry")
	}

	d.licenseNumber = number
	d.licenseExpiry = expiry
	return nil
}

// setExperienceYears validates and sets the experience.
// This is a private method used only during construction.
func (d *Driver) setExperienceYears(years int) error {
	if years < 0 {
		return errs.NewValueIsInvalidErrorWithCause("experience", fmt.Errorf("%d is negative", years))
	}
	d.experienceYears = years
	return nil
}

// setVehicle validates and sets the registered vehicle.
// This is a private method used only during construction.
func (d *Driver) setVehicle(vehicle Vehicle) error {
	if vehicle.Type == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	if vehicle.RegistrationNumber == "" {
		return errs.NewValueIsRequiredError("vehicle registration number")
	}
	if vehicle.CapacityTons <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle capacity",
			fmt.Errorf("%f is not greater than 0", vehicle.CapacityTons),
		)
	}

	d.vehicle = vehicle
	return nil
}

// setLocation validates and sets the position and its timestamp.
// This is a private method used only during construction.
func (d *Driver) setLocation(point kernel.GeoPoint, updatedAt time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	d.location = point
	d.locationUpdatedAt = updatedAt
	return nil
}

// setStatus validates and sets the availability state together with the
// active load, enforcing the OnTrip/activeLoad invariant.
// This is a private method used only during restoration.
func (d *Driver) setStatus(status Status, activeLoadID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if status == OnTrip && activeLoadID == nil {
		return errs.NewValueIsRequiredError("activeLoad")
	}
	if status != OnTrip && activeLoadID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"activeLoad",
			fmt.Errorf("%s is not a valid status to have an active load", status),
		)
	}
	if activeLoadID != nil {
		if err := activeLoadID.Validate(); err != nil {
			return err
		}
	}

	d.status = status
	d.activeLoadID = activeLoadID
	return nil
}

// setEarnings validates and sets the earnings ledger.
// This is a private method used only during restoration.
func (d *Driver) setEarnings(earnings Earnings) error {
	if earnings.Total < 0 || earnings.PendingPayouts < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings", errors.New("ledger totals cannot be negative"))
	}

	d.earnings = earnings
	return nil
}
