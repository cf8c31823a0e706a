// Package driver provides domain entities and business logic for driver management
// in the freight marketplace. It implements the Driver aggregate root with lifecycle
// management, availability state transitions, and the running earnings ledger.
//
// The package includes:
//   - Driver: The aggregate root that manages driver identity, vehicle, location,
//     availability, and earnings
//   - Status: A state machine that enforces valid driver availability transitions
//   - Vehicle, Earnings, Payout: Value objects carried by the aggregate
//
// Key business rules:
//   - Drivers start offline and must be activated before taking trips
//   - A driver is on_trip if and only if an active load is set
//   - A driver on a trip can only leave that state by finishing the trip
//   - Earnings totals are monotonically non-decreasing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package driver
