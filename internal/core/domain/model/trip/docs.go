// Package trip provides domain entities and business logic for trip management
// in the freight marketplace. A Trip is the join record linking one driver to
// one load for the duration of a single haul.
//
// The package includes:
//   - Trip: The aggregate root that manages the haul from start to completion
//   - Status: A state machine over started/completed/cancelled
//   - Stop, Earnings, RouteSample: Value objects carried by the aggregate
//
// Key business rules:
//   - A trip is created already started, stamped with its start time
//   - Completed and cancelled are terminal; a trip completes exactly once
//   - Earnings and distance are set once, at completion
//   - The route is an append-only sequence of en-route samples
package trip
