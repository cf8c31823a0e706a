// Package http exposes the marketplace over a REST API.
// It translates JSON requests into commands and queries, and maps core
// errors onto HTTP status codes.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/trip"

	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UpdateDriverLocationHandler processes driver location reports.
// Satisfied by the plain command handler and its metrics wrapper.
type UpdateDriverLocationHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateDriverLocationCommand) error
}

// StartTripHandler opens trips. Satisfied by the plain command handler
// and its metrics wrapper.
type StartTripHandler interface {
	Handle(ctx context.Context, cmd commands.StartTripCommand) error
}

// EndTripHandler settles trips. Satisfied by the plain command handler
// and its metrics wrapper.
type EndTripHandler interface {
	Handle(ctx context.Context, cmd commands.EndTripCommand) (commands.EndTripResult, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDriverHandler         commands.CreateDriverCommandHandler
	updateDriverLocationHandler UpdateDriverLocationHandler
	startTripHandler            StartTripHandler
	endTripHandler              EndTripHandler
	createLoadHandler           commands.CreateLoadCommandHandler
	assignLoadHandler           commands.AssignLoadCommandHandler
	updateLoadStatusHandler     commands.UpdateLoadStatusCommandHandler

	// Query handlers
	getDriverHandler         queries.GetDriverQueryHandler
	getLoadsHandler          queries.GetLoadsQueryHandler
	findNearbyDriversHandler queries.FindNearbyDriversQueryHandler
	findNearbyLoadsHandler   queries.FindNearbyLoadsQueryHandler
	getTripHistoryHandler    queries.GetTripHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDriverHandler commands.CreateDriverCommandHandler,
	updateDriverLocationHandler UpdateDriverLocationHandler,
	startTripHandler StartTripHandler,
	endTripHandler EndTripHandler,
	createLoadHandler commands.CreateLoadCommandHandler,
	assignLoadHandler commands.AssignLoadCommandHandler,
	updateLoadStatusHandler commands.UpdateLoadStatusCommandHandler,
	getDriverHandler queries.GetDriverQueryHandler,
	getLoadsHandler queries.GetLoadsQueryHandler,
	findNearbyDriversHandler queries.FindNearbyDriversQueryHandler,
	findNearbyLoadsHandler queries.FindNearbyLoadsQueryHandler,
	getTripHistoryHandler queries.GetTripHistoryQueryHandler,
) *Server {
	return &Server{
		createDriverHandler:         createDriverHandler,
		updateDriverLocationHandler: updateDriverLocationHandler,
		startTripHandler:            startTripHandler,
		endTripHandler:              endTripHandler,
		createLoadHandler:           createLoadHandler,
		assignLoadHandler:           assignLoadHandler,
		updateLoadStatusHandler:     updateLoadStatusHandler,
		getDriverHandler:            getDriverHandler,
		getLoadsHandler:             getLoadsHandler,
		findNearbyDriversHandler:    findNearbyDriversHandler,
		findNearbyLoadsHandler:      findNearbyLoadsHandler,
		getTripHistoryHandler:       getTripHistoryHandler,
	}
}

// RegisterRoutes mounts all API routes on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/drivers", s.CreateDriver)
	api.GET("/drivers/nearby", s.FindNearbyDrivers)
	api.GET("/drivers/:driverID", s.GetDriver)
	api.POST("/drivers/:driverID/location", s.UpdateDriverLocation)
	api.GET("/drivers/:driverID/trips", s.GetTripHistory)

	api.POST("/loads", s.CreateLoad)
	api.GET("/loads", s.GetLoads)
	api.GET("/loads/nearby", s.FindNearbyLoads)
	api.POST("/loads/:loadID/assign", s.AssignLoad)
	api.POST("/loads/:loadID/status", s.UpdateLoadStatus)

	api.POST("/trips", s.StartTrip)
	api.POST("/trips/:tripID/complete", s.EndTrip)
}

// CreateDriver handles POST /api/v1/drivers - onboards a new driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req CreateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid user_id: "+err.Error())
	}

	location, err := kernel.NewGeoPoint(req.Location.Lon, req.Location.Lat)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(
		driverID,
		userID,
		req.LicenseNumber,
		req.LicenseExpiry,
		req.ExperienceYears,
		driver.Vehicle{
			Type:               req.Vehicle.Type,
			RegistrationNumber: req.Vehicle.RegistrationNo,
			CapacityTons:       req.Vehicle.CapacityTons,
		},
		location,
	)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	if err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: driverID.String()})
}

// GetDriver handles GET /api/v1/drivers/:driverID - retrieves one driver profile.
func (s *Server) GetDriver(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverID"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	query, err := queries.NewGetDriverQuery(driverID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	profile, err := s.getDriverHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCoreError(ctx, err)
	}

	resp := DriverResponse{
		ID:                profile.ID.String(),
		UserID:            profile.UserID.String(),
		LicenseNumber:     profile.LicenseNumber,
		LicenseExpiry:     profile.LicenseExpiry,
		ExperienceYears:   profile.ExperienceYears,
		VehicleType:       profile.VehicleType,
		RegistrationNo:    profile.RegistrationNo,
		CapacityTons:      profile.CapacityTons,
		Location:          geoPointToDTO(profile.Location),
		LocationUpdatedAt: profile.LocationUpdatedAt,
		Status:            profile.Status,
		TotalEarnings:     profile.TotalEarnings,
		PendingPayouts:    profile.PendingPayouts,
	}
	if profile.ActiveLoadID != nil {
		activeLoadID := profile.ActiveLoadID.String()
		resp.ActiveLoadID = &activeLoadID
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpdateDriverLocation handles POST /api/v1/drivers/:driverID/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverID"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	var req UpdateDriverLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	point, err := kernel.NewGeoPoint(req.Location.Lon, req.Location.Lat)
	if err != nil {
		return badRequest(ctx, "Invalid location: "+err.Error())
	}

	var status *driver.Status
	if req.Status != nil {
		parsed, parseErr := driver.StatusFromString(*req.Status)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+parseErr.Error())
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, point, req.RecordedAt, status)
	if err != nil {
		return badRequest(ctx, "Invalid location update: "+err.Error())
	}

	if err := s.updateDriverLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FindNearbyDrivers handles GET /api/v1/drivers/nearby.
// Accepts lon, lat and optional radius (meters) and limit query params.
func (s *Server) FindNearbyDrivers(ctx echo.Context) error {
	origin, maxDistance, limit, err := parseProximityParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewFindNearbyDriversQuery(origin, maxDistance, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	drivers, err := s.findNearbyDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCoreError(ctx, err)
	}

	resp := make([]NearbyDriverResponse, len(drivers))
	for i, d := range drivers {
		resp[i] = NearbyDriverResponse{
			ID:             d.ID.String(),
			Location:       geoPointToDTO(d.Location),
			VehicleType:    d.VehicleType,
			CapacityTons:   d.CapacityTons,
			DistanceMeters: d.DistanceMeters,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetTripHistory handles GET /api/v1/drivers/:driverID/trips.
func (s *Server) GetTripHistory(ctx echo.Context) error {
	driverID, err := kernel.UUIDFromString(ctx.Param("driverID"))
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	page, limit, err := parsePagingParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetTripHistoryQuery(driverID, page, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	history, err := s.getTripHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCoreError(ctx, err)
	}

	resp := TripHistoryResponse{
		Trips: make([]TripSummaryResponse, len(history.Trips)),
		Total: history.Total,
		Page:  history.Page,
		Pages: history.Pages,
	}
	for i, t := range history.Trips {
		resp.Trips[i] = tripSummaryToDTO(t)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CreateLoad handles POST /api/v1/loads - posts a new load to the marketplace.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var req CreateLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipperID, err := kernel.UUIDFromString(req.ShipperID)
	if err != nil {
		return badRequest(ctx, "Invalid shipper_id: "+err.Error())
	}

	pickup, err := locationFromDTO(req.Pickup)
	if err != nil {
		return badRequest(ctx, "Invalid pickup: "+err.Error())
	}
	delivery, err := locationFromDTO(req.Delivery)
	if err != nil {
		return badRequest(ctx, "Invalid delivery: "+err.Error())
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(
		loadID,
		shipperID,
		pickup,
		delivery,
		load.Cargo{
			Type:        req.Cargo.Type,
			WeightTons:  req.Cargo.WeightTons,
			VolumeCubic: req.Cargo.VolumeCubic,
			Description: req.Cargo.Description,
		},
		load.Pricing{
			BasePrice:  req.Pricing.BasePrice,
			Commission: req.Pricing.Commission,
			TotalPrice: req.Pricing.TotalPrice,
		},
		load.Schedule{
			PickupDate:     req.Schedule.PickupDate,
			DeliveryDate:   req.Schedule.DeliveryDate,
			FlexibleTiming: req.Schedule.FlexibleTiming,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid load data: "+err.Error())
	}

	if err := s.createLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: loadID.String()})
}

// GetLoads handles GET /api/v1/loads.
// Accepts optional status and shipper_id filters plus page/limit params.
func (s *Server) GetLoads(ctx echo.Context) error {
	page, limit, err := parsePagingParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var status *load.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, parseErr := load.StatusFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid status: "+parseErr.Error())
		}
		status = &parsed
	}

	var shipperID *kernel.UUID
	if raw := ctx.QueryParam("shipper_id"); raw != "" {
		parsed, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return badRequest(ctx, "Invalid shipper_id: "+parseErr.Error())
		}
		shipperID = &parsed
	}

	query, err := queries.NewGetLoadsQuery(status, shipperID, page, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCoreError(ctx, err)
	}

	resp := LoadPageResponse{
		Loads: make([]LoadSummaryResponse, len(result.Loads)),
		Total: result.Total,
		Page:  result.Page,
		Pages: result.Pages,
	}
	for i, l := range result.Loads {
		resp.Loads[i] = loadSummaryToDTO(l)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// FindNearbyLoads handles GET /api/v1/loads/nearby.
// Accepts lon, lat and optional radius (meters) and limit query params.
func (s *Server) FindNearbyLoads(ctx echo.Context) error {
	origin, maxDistance, limit, err := parseProximityParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewFindNearbyLoadsQuery(origin, maxDistance, limit)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	loads, err := s.findNearbyLoadsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapCoreError(ctx, err)
	}

	resp := make([]NearbyLoadResponse, len(loads))
	for i, l := range loads {
		resp[i] = NearbyLoadResponse{
			ID:             l.ID.String(),
			Pickup:         geoPointToDTO(l.Pickup),
			PickupCity:     l.PickupCity,
			DeliveryCity:   l.DeliveryCity,
			CargoType:      l.CargoType,
			WeightTons:     l.WeightTons,
			TotalPrice:     l.TotalPrice,
			PickupDate:     l.PickupDate,
			DistanceMeters: l.DistanceMeters,
		}
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AssignLoad handles POST /api/v1/loads/:loadID/assign.
func (s *Server) AssignLoad(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("loadID"))
	if err != nil {
		return badRequest(ctx, "Invalid load id: "+err.Error())
	}

	var req AssignLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id: "+err.Error())
	}

	cmd, err := commands.NewAssignLoadCommand(loadID, driverID)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if err := s.assignLoadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLoadStatus handles POST /api/v1/loads/:loadID/status.
func (s *Server) UpdateLoadStatus(ctx echo.Context) error {
	loadID, err := kernel.UUIDFromString(ctx.Param("loadID"))
	if err != nil {
		return badRequest(ctx, "Invalid load id: "+err.Error())
	}

	var req UpdateLoadStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := load.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	var point *kernel.GeoPoint
	if req.Location != nil {
		parsed, pointErr := kernel.NewGeoPoint(req.Location.Lon, req.Location.Lat)
		if pointErr != nil {
			return badRequest(ctx, "Invalid location: "+pointErr.Error())
		}
		point = &parsed
	}

	cmd, err := commands.NewUpdateLoadStatusCommand(loadID, target, point)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err := s.updateLoadStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartTrip handles POST /api/v1/trips.
func (s *Server) StartTrip(ctx echo.Context) error {
	var req StartTripRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return badRequest(ctx, "Invalid driver_id: "+err.Error())
	}
	loadID, err := kernel.UUIDFromString(req.LoadID)
	if err != nil {
		return badRequest(ctx, "Invalid load_id: "+err.Error())
	}

	startPoint, err := kernel.NewGeoPoint(req.Start.Point.Lon, req.Start.Point.Lat)
	if err != nil {
		return badRequest(ctx, "Invalid start point: "+err.Error())
	}

	tripID := kernel.NewUUID()
	cmd, err := commands.NewStartTripCommand(
		tripID,
		driverID,
		loadID,
		trip.Stop{Point: startPoint, Address: req.Start.Address},
	)
	if err != nil {
		return badRequest(ctx, "Invalid trip data: "+err.Error())
	}

	if err := s.startTripHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: tripID.String()})
}

// EndTrip handles POST /api/v1/trips/:tripID/complete.
func (s *Server) EndTrip(ctx echo.Context) error {
	tripID, err := kernel.UUIDFromString(ctx.Param("tripID"))
	if err != nil {
		return badRequest(ctx, "Invalid trip id: "+err.Error())
	}

	var req EndTripRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	endPoint, err := kernel.NewGeoPoint(req.End.Point.Lon, req.End.Point.Lat)
	if err != nil {
		return badRequest(ctx, "Invalid end point: "+err.Error())
	}

	cmd, err := commands.NewEndTripCommand(
		tripID,
		trip.Stop{Point: endPoint, Address: req.End.Address},
		req.DistanceKm,
		trip.Earnings{
			BaseAmount:  req.Earnings.BaseAmount,
			BonusAmount: req.Earnings.BonusAmount,
			TotalAmount: req.Earnings.TotalAmount,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	result, err := s.endTripHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return mapCoreError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EndTripResponse{
		TripID:          result.TripID.String(),
		DriverID:        result.DriverID.String(),
		LoadID:          result.LoadID.String(),
		DurationMinutes: result.Duration.Minutes(),
		BaseAmount:      result.Earnings.BaseAmount,
		BonusAmount:     result.Earnings.BonusAmount,
		TotalAmount:     result.Earnings.TotalAmount,
	})
}

func locationFromDTO(dto LocationDTO) (load.Location, error) {
	point, err := kernel.NewGeoPoint(dto.Point.Lon, dto.Point.Lat)
	if err != nil {
		return load.Location{}, err
	}
	return load.Location{
		Point: point,
		Address: kernel.Address{
			Street:  dto.Address.Street,
			City:    dto.Address.City,
			State:   dto.Address.State,
			Pincode: dto.Address.Pincode,
		},
	}, nil
}

// parseProximityParams reads lon, lat, radius and limit query params.
// radius and limit are optional; lon and lat are required.
func parseProximityParams(ctx echo.Context) (kernel.GeoPoint, float64, int, error) {
	lon, err := strconv.ParseFloat(ctx.QueryParam("lon"), 64)
	if err != nil {
		return kernel.GeoPoint{}, 0, 0, errors.New("lon query param is required and must be a number")
	}
	lat, err := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	if err != nil {
		return kernel.GeoPoint{}, 0, 0, errors.New("lat query param is required and must be a number")
	}

	origin, err := kernel.NewGeoPoint(lon, lat)
	if err != nil {
		return kernel.GeoPoint{}, 0, 0, err
	}

	var radius float64
	if raw := ctx.QueryParam("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return kernel.GeoPoint{}, 0, 0, errors.New("radius query param must be a number")
		}
	}

	var limit int
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return kernel.GeoPoint{}, 0, 0, errors.New("limit query param must be an integer")
		}
	}

	return origin, radius, limit, nil
}

// parsePagingParams reads optional page and limit query params.
func parsePagingParams(ctx echo.Context) (int, int, error) {
	var page, limit int
	var err error

	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("page query param must be an integer")
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("limit query param must be an integer")
		}
	}

	return page, limit, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// mapCoreError translates core errors into HTTP status codes: missing
// aggregates map to 404, validation and business-rule rejections to 400,
// state conflicts and concurrent updates to 409, everything else to 500.
func mapCoreError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrDriverProfileAlreadyExists),
		errors.Is(err, commands.ErrDriverAlreadyOnTrip),
		errors.Is(err, commands.ErrLoadNotAssignedToDriver):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrConcurrentUpdate):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, context.DeadlineExceeded):
		// Store timeout after bounded retries; the client may try again.
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
