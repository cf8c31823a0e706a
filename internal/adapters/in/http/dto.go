package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON error envelope returned for all failed
// requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// GeoPointDTO carries a coordinate pair in decimal degrees.
type GeoPointDTO struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// AddressDTO carries a postal address.
type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// LocationDTO is a haul endpoint: coordinates plus address.
type LocationDTO struct {
	Point   GeoPointDTO `json:"point"`
	Address AddressDTO  `json:"address"`
}

// CreateDriverRequest is the body of POST /api/v1/drivers.
type CreateDriverRequest struct {
	UserID          string    `json:"user_id"`
	LicenseNumber   string    `json:"license_number"`
	LicenseExpiry   time.Time `json:"license_expiry"`
	ExperienceYears int       `json:"experience_years"`
	Vehicle         struct {
		Type           string  `json:"type"`
		RegistrationNo string  `json:"registration_number"`
		CapacityTons   float64 `json:"capacity_tons"`
	} `json:"vehicle"`
	Location GeoPointDTO `json:"location"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// UpdateDriverLocationRequest is the body of POST /api/v1/drivers/:driverID/location.
type UpdateDriverLocationRequest struct {
	Location   GeoPointDTO `json:"location"`
	RecordedAt *time.Time  `json:"recorded_at,omitempty"`
	Status     *string     `json:"status,omitempty"`
}

// DriverResponse is the read model returned by GET /api/v1/drivers/:driverID.
type DriverResponse struct {
	ID                string      `json:"id"`
	UserID            string      `json:"user_id"`
	LicenseNumber     string      `json:"license_number"`
	LicenseExpiry     time.Time   `json:"license_expiry"`
	ExperienceYears   int         `json:"experience_years"`
	VehicleType       string      `json:"vehicle_type"`
	RegistrationNo    string      `json:"registration_number"`
	CapacityTons      float64     `json:"capacity_tons"`
	Location          GeoPointDTO `json:"location"`
	LocationUpdatedAt time.Time   `json:"location_updated_at"`
	Status            string      `json:"status"`
	ActiveLoadID      *string     `json:"active_load_id,omitempty"`
	TotalEarnings     float64     `json:"total_earnings"`
	PendingPayouts    float64     `json:"pending_payouts"`
}

// NearbyDriverResponse is one entry of GET /api/v1/drivers/nearby.
type NearbyDriverResponse struct {
	ID             string      `json:"id"`
	Location       GeoPointDTO `json:"location"`
	VehicleType    string      `json:"vehicle_type"`
	CapacityTons   float64     `json:"capacity_tons"`
	DistanceMeters float64     `json:"distance_meters"`
}

// CreateLoadRequest is the body of POST /api/v1/loads.
type CreateLoadRequest struct {
	ShipperID string      `json:"shipper_id"`
	Pickup    LocationDTO `json:"pickup"`
	Delivery  LocationDTO `json:"delivery"`
	Cargo     struct {
		Type        string  `json:"type"`
		WeightTons  float64 `json:"weight_tons"`
		VolumeCubic float64 `json:"volume_cubic"`
		Description string  `json:"description,omitempty"`
	} `json:"cargo"`
	Pricing struct {
		BasePrice  float64 `json:"base_price"`
		Commission float64 `json:"commission"`
		TotalPrice float64 `json:"total_price"`
	} `json:"pricing"`
	Schedule struct {
		PickupDate     time.Time `json:"pickup_date"`
		DeliveryDate   time.Time `json:"delivery_date"`
		FlexibleTiming bool      `json:"flexible_timing"`
	} `json:"schedule"`
}

// AssignLoadRequest is the body of POST /api/v1/loads/:loadID/assign.
type AssignLoadRequest struct {
	DriverID string `json:"driver_id"`
}

// UpdateLoadStatusRequest is the body of POST /api/v1/loads/:loadID/status.
type UpdateLoadStatusRequest struct {
	Status   string       `json:"status"`
	Location *GeoPointDTO `json:"location,omitempty"`
}

// LoadSummaryResponse is one entry of the paginated GET /api/v1/loads.
type LoadSummaryResponse struct {
	ID           string      `json:"id"`
	ShipperID    string      `json:"shipper_id"`
	DriverID     *string     `json:"driver_id,omitempty"`
	Status       string      `json:"status"`
	PickupCity   string      `json:"pickup_city"`
	DeliveryCity string      `json:"delivery_city"`
	Pickup       GeoPointDTO `json:"pickup"`
	Delivery     GeoPointDTO `json:"delivery"`
	CargoType    string      `json:"cargo_type"`
	WeightTons   float64     `json:"weight_tons"`
	TotalPrice   float64     `json:"total_price"`
	PickupDate   time.Time   `json:"pickup_date"`
	CreatedAt    time.Time   `json:"created_at"`
}

// LoadPageResponse is the envelope of GET /api/v1/loads.
type LoadPageResponse struct {
	Loads []LoadSummaryResponse `json:"loads"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Pages int                   `json:"pages"`
}

// NearbyLoadResponse is one entry of GET /api/v1/loads/nearby.
type NearbyLoadResponse struct {
	ID             string      `json:"id"`
	Pickup         GeoPointDTO `json:"pickup"`
	PickupCity     string      `json:"pickup_city"`
	DeliveryCity   string      `json:"delivery_city"`
	CargoType      string      `json:"cargo_type"`
	WeightTons     float64     `json:"weight_tons"`
	TotalPrice     float64     `json:"total_price"`
	PickupDate     time.Time   `json:"pickup_date"`
	DistanceMeters float64     `json:"distance_meters"`
}

// StartTripRequest is the body of POST /api/v1/trips.
type StartTripRequest struct {
	DriverID string `json:"driver_id"`
	LoadID   string `json:"load_id"`
	Start    struct {
		Point   GeoPointDTO `json:"point"`
		Address string      `json:"address"`
	} `json:"start"`
}

// EndTripRequest is the body of POST /api/v1/trips/:tripID/complete.
type EndTripRequest struct {
	End struct {
		Point   GeoPointDTO `json:"point"`
		Address string      `json:"address"`
	} `json:"end"`
	DistanceKm float64 `json:"distance_km"`
	Earnings   struct {
		BaseAmount  float64 `json:"base_amount"`
		BonusAmount float64 `json:"bonus_amount"`
		TotalAmount float64 `json:"total_amount"`
	} `json:"earnings"`
}

// EndTripResponse reports the settled trip.
type EndTripResponse struct {
	TripID          string  `json:"trip_id"`
	DriverID        string  `json:"driver_id"`
	LoadID          string  `json:"load_id"`
	DurationMinutes float64 `json:"duration_minutes"`
	BaseAmount      float64 `json:"base_amount"`
	BonusAmount     float64 `json:"bonus_amount"`
	TotalAmount     float64 `json:"total_amount"`
}

// TripSummaryResponse is one entry of the paginated trip history.
type TripSummaryResponse struct {
	ID           string     `json:"id"`
	LoadID       string     `json:"load_id"`
	Status       string     `json:"status"`
	StartAddress string     `json:"start_address"`
	EndAddress   *string    `json:"end_address,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	DistanceKm   float64    `json:"distance_km"`
	Earnings     *float64   `json:"earnings,omitempty"`
}

// TripHistoryResponse is the envelope of GET /api/v1/drivers/:driverID/trips.
type TripHistoryResponse struct {
	Trips []TripSummaryResponse `json:"trips"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Pages int                   `json:"pages"`
}

func geoPointToDTO(p kernel.GeoPoint) GeoPointDTO {
	return GeoPointDTO{Lon: p.Lon(), Lat: p.Lat()}
}

func loadSummaryToDTO(s queries.LoadSummary) LoadSummaryResponse {
	resp := LoadSummaryResponse{
		ID:           s.ID.String(),
		ShipperID:    s.ShipperID.String(),
		Status:       s.Status,
		PickupCity:   s.PickupCity,
		DeliveryCity: s.DeliveryCity,
		Pickup:       geoPointToDTO(s.Pickup),
		Delivery:     geoPointToDTO(s.Delivery),
		CargoType:    s.CargoType,
		WeightTons:   s.WeightTons,
		TotalPrice:   s.TotalPrice,
		PickupDate:   s.PickupDate,
		CreatedAt:    s.CreatedAt,
	}
	if s.DriverID != nil {
		driverID := s.DriverID.String()
		resp.DriverID = &driverID
	}
	return resp
}

func tripSummaryToDTO(s queries.TripSummary) TripSummaryResponse {
	return TripSummaryResponse{
		ID:           s.ID.String(),
		LoadID:       s.LoadID.String(),
		Status:       s.Status,
		StartAddress: s.StartAddress,
		EndAddress:   s.EndAddress,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		DistanceKm:   s.DistanceKm,
		Earnings:     s.Earnings,
	}
}
