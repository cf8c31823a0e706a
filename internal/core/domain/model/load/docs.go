// Package load provides domain entities and business logic for load management
// in the freight marketplace. It implements the Load aggregate root with lifecycle
// management, state transitions, and append-only tracking history.
//
// The package includes:
//   - Load: The aggregate root that manages load identity, cargo, pricing,
//     schedule, and tracking
//   - Status: A state machine that enforces valid load status transitions
//   - Location, Cargo, Pricing, Schedule, TrackingEntry: Value objects carried
//     by the aggregate
//
// Key business rules:
//   - Loads start pending and progress forward: pending -> assigned ->
//     in_transit -> delivered
//   - Cancellation is terminal from any non-terminal status
//   - A driver is referenced if and only if the load is assigned, in transit,
//     or delivered
//   - Tracking history is append-only; entries are never rewritten or pruned
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package load
