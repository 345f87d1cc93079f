package queries

import (
	"time"

	"parking-app/internal/domain/stats"

	"github.com/google/uuid"
)

// UserView is the account as shown to its owner and to admins; it never
// carries the password hash.
type UserView struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	VehicleRegNo string    `json:"vehicle_reg_no"`
	Address      string    `json:"address"`
	Pincode      string    `json:"pincode"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type LotView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	PricePerHourCents int64     `json:"price_per_hour_cents"`
	Address           string    `json:"address"`
	PinCode           string    `json:"pin_code"`
	TotalSpots        int       `json:"total_spots"`
	AvailableSpots    int       `json:"available_spots"`
	OccupiedSpots     int       `json:"occupied_spots"`
	CreatedAt         time.Time `json:"created_at"`
}

type ReservationView struct {
	ID                uuid.UUID  `json:"id"`
	SpotID            uuid.UUID  `json:"spot_id"`
	SpotNumber        int        `json:"spot_number"`
	LotID             uuid.UUID  `json:"lot_id"`
	LotName           string     `json:"lot_name"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           *time.Time `json:"end_time,omitempty"`
	PricePerHourCents int64      `json:"price_per_hour_cents"`
	Status            string     `json:"status"`
}

type BillingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	LotID           uuid.UUID `json:"lot_id"`
	LotName         string    `json:"lot_name"`
	SpotID          uuid.UUID `json:"spot_id"`
	BookedTime      time.Time `json:"booked_time"`
	ReleasedTime    time.Time `json:"released_time"`
	DurationHours   float64   `json:"duration_hours"`
	AmountPaidCents int64     `json:"amount_paid_cents"`
}

type RecentBookingView struct {
	Username        string    `json:"username"`
	LotName         string    `json:"lot_name"`
	BookedTime      time.Time `json:"booked_time"`
	AmountPaidCents int64     `json:"amount_paid_cents"`
}

type AdminStatsView struct {
	TotalRevenueCents int64               `json:"total_revenue_cents"`
	OccupancyRate     float64             `json:"occupancy_rate"`
	TotalUsers        int64               `json:"total_users"`
	RecentBookings    []RecentBookingView `json:"recent_bookings"`
	RevenueSeries     []stats.Point       `json:"revenue_series"`
}

type UserStatsView struct {
	TotalSpentCents  int64         `json:"total_spent_cents"`
	TotalBookings    int64         `json:"total_bookings"`
	RecentActivities []BillingView `json:"recent_activities"`
	UsageSeries      []stats.Point `json:"usage_series"`
}
