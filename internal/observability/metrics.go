// Package observability wires Prometheus metrics around the use cases
// that matter operationally: trip volume by lifecycle stage, trip
// duration and payouts, the pool of active drivers, and the location
// ingest rate.
package observability

import (
	"context"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/trip"

	"github.com/prometheus/client_golang/prometheus"
)

// Trip durations are short-haul to long-haul, so buckets run from 15
// minutes to 8 hours.
var tripDurationBucketsMinutes = []float64{15, 30, 60, 120, 180, 240, 300, 360, 420, 480}

// Metrics holds the marketplace's Prometheus collectors.
type Metrics struct {
	trips               *prometheus.CounterVec
	activeDrivers       prometheus.Gauge
	tripDurationMinutes prometheus.Histogram
	driverEarnings      *prometheus.GaugeVec
	locationUpdates     prometheus.Counter
}

// NewMetrics creates and registers the marketplace collectors on the
// registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		trips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "freight_trips_total",
			Help: "Number of trips by lifecycle stage.",
		}, []string{"status"}),
		activeDrivers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "freight_active_drivers",
			Help: "Number of drivers currently reporting themselves available.",
		}),
		tripDurationMinutes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "freight_trip_duration_minutes",
			Help:    "Observed trip durations in minutes.",
			Buckets: tripDurationBucketsMinutes,
		}),
		driverEarnings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "freight_driver_trip_earnings",
			Help: "Earnings credited by the most recent completed trip, per driver.",
		}, []string{"driver_id"}),
		locationUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freight_driver_location_updates_total",
			Help: "Number of accepted driver location reports.",
		}),
	}

	reg.MustRegister(
		m.trips,
		m.activeDrivers,
		m.tripDurationMinutes,
		m.driverEarnings,
		m.locationUpdates,
	)

	return m
}

// TripsWithStatus returns the trip counter for one lifecycle stage.
func (m *Metrics) TripsWithStatus(status string) prometheus.Counter {
	return m.trips.WithLabelValues(status)
}

// ActiveDrivers returns the available-driver pool gauge.
func (m *Metrics) ActiveDrivers() prometheus.Gauge {
	return m.activeDrivers
}

// DriverEarningsFor returns the last-payout gauge for one driver.
func (m *Metrics) DriverEarningsFor(driverID string) prometheus.Gauge {
	return m.driverEarnings.WithLabelValues(driverID)
}

// LocationUpdates returns the accepted-report counter.
func (m *Metrics) LocationUpdates() prometheus.Counter {
	return m.locationUpdates
}

// StartTripHandler is the use case wrapped by InstrumentedStartTripHandler.
type StartTripHandler interface {
	Handle(ctx context.Context, cmd commands.StartTripCommand) error
}

// EndTripHandler is the use case wrapped by InstrumentedEndTripHandler.
type EndTripHandler interface {
	Handle(ctx context.Context, cmd commands.EndTripCommand) (commands.EndTripResult, error)
}

// UpdateDriverLocationHandler is the use case wrapped by
// InstrumentedUpdateDriverLocationHandler.
type UpdateDriverLocationHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateDriverLocationCommand) error
}

// InstrumentedStartTripHandler counts trip starts around the start trip
// use case. Rejected starts record nothing.
type InstrumentedStartTripHandler struct {
	inner   StartTripHandler
	metrics *Metrics
}

// NewInstrumentedStartTripHandler wraps the start trip handler with metrics.
func NewInstrumentedStartTripHandler(inner StartTripHandler, metrics *Metrics) InstrumentedStartTripHandler {
	return InstrumentedStartTripHandler{inner: inner, metrics: metrics}
}

// Handle delegates to the wrapped handler and counts successful starts.
func (h InstrumentedStartTripHandler) Handle(ctx context.Context, cmd commands.StartTripCommand) error {
	if err := h.inner.Handle(ctx, cmd); err != nil {
		return err
	}

	h.metrics.trips.WithLabelValues(trip.Started.String()).Inc()
	return nil
}

// InstrumentedEndTripHandler records completion metrics around the end
// trip use case. Failed completions record nothing.
type InstrumentedEndTripHandler struct {
	inner   EndTripHandler
	metrics *Metrics
}

// NewInstrumentedEndTripHandler wraps the end trip handler with metrics.
func NewInstrumentedEndTripHandler(inner EndTripHandler, metrics *Metrics) InstrumentedEndTripHandler {
	return InstrumentedEndTripHandler{inner: inner, metrics: metrics}
}

// Handle delegates to the wrapped handler and, on success, observes the
// trip duration, the completion counter, and the driver's last payout.
func (h InstrumentedEndTripHandler) Handle(ctx context.Context, cmd commands.EndTripCommand) (commands.EndTripResult, error) {
	result, err := h.inner.Handle(ctx, cmd)
	if err != nil {
		return result, err
	}

	h.metrics.trips.WithLabelValues(trip.Completed.String()).Inc()
	h.metrics.tripDurationMinutes.Observe(result.Duration.Minutes())
	h.metrics.driverEarnings.
		WithLabelValues(result.DriverID.String()).
		Set(result.Earnings.TotalAmount)

	return result, nil
}

// InstrumentedUpdateDriverLocationHandler counts accepted location
// reports and tracks the active-driver pool around the update location
// use case.
type InstrumentedUpdateDriverLocationHandler struct {
	inner   UpdateDriverLocationHandler
	metrics *Metrics
}

// NewInstrumentedUpdateDriverLocationHandler wraps the location handler with metrics.
func NewInstrumentedUpdateDriverLocationHandler(
	inner UpdateDriverLocationHandler,
	metrics *Metrics,
) InstrumentedUpdateDriverLocationHandler {
	return InstrumentedUpdateDriverLocationHandler{inner: inner, metrics: metrics}
}

// Handle delegates to the wrapped handler, counts successful reports,
// and moves the active-driver gauge when the report carries an
// availability change: up on available, down on offline.
func (h InstrumentedUpdateDriverLocationHandler) Handle(ctx context.Context, cmd commands.UpdateDriverLocationCommand) error {
	if err := h.inner.Handle(ctx, cmd); err != nil {
		return err
	}

	h.metrics.locationUpdates.Inc()

	if cmd.Status() != nil {
		switch *cmd.Status() {
		case driver.Available:
			h.metrics.activeDrivers.Inc()
		case driver.Offline:
			h.metrics.activeDrivers.Dec()
		}
	}

	return nil
}
