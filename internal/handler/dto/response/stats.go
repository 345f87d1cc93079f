package response

import (
	"time"

	"parking-app/internal/domain/stats"
	"parking-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BillingResponse struct {
	ID              uuid.UUID `json:"id"`
	LotID           uuid.UUID `json:"lotId"`
	LotName         string    `json:"lotName"`
	SpotID          uuid.UUID `json:"spotId"`
	BookedTime      time.Time `json:"bookedTime"`
	ReleasedTime    time.Time `json:"releasedTime"`
	DurationHours   float64   `json:"durationHours"`
	AmountPaidCents int64     `json:"amountPaidCents"`
}

type RecentBookingResponse struct {
	Username        string    `json:"username"`
	LotName         string    `json:"lotName"`
	BookedTime      time.Time `json:"bookedTime"`
	AmountPaidCents int64     `json:"amountPaidCents"`
}

type SeriesPointResponse struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type AdminStatsResponse struct {
	TotalRevenueCents int64                    `json:"totalRevenueCents"`
	OccupancyRate     float64                  `json:"occupancyRate"`
	TotalUsers        int64                    `json:"totalUsers"`
	RecentBookings    []*RecentBookingResponse `json:"recentBookings"`
	RevenueSeries     []SeriesPointResponse    `json:"revenueSeries"`
}

type UserStatsResponse struct {
	TotalSpentCents  int64                 `json:"totalSpentCents"`
	TotalBookings    int64                 `json:"totalBookings"`
	RecentActivities []*BillingResponse    `json:"recentActivities"`
	UsageSeries      []SeriesPointResponse `json:"usageSeries"`
}

func FromBillingViews(vs []*queries.BillingView) []*BillingResponse {
	out := make([]*BillingResponse, 0, len(vs))
	for _, v := range vs {
		var res BillingResponse
		_ = copier.Copy(&res, v)
		out = append(out, &res)
	}
	return out
}

func FromAdminStats(v *queries.AdminStatsView) *AdminStatsResponse {
	res := &AdminStatsResponse{
		TotalRevenueCents: v.TotalRevenueCents,
		OccupancyRate:     v.OccupancyRate,
		TotalUsers:        v.TotalUsers,
		RecentBookings:    make([]*RecentBookingResponse, 0, len(v.RecentBookings)),
		RevenueSeries:     fromSeries(v.RevenueSeries),
	}
	for i := range v.RecentBookings {
		var b RecentBookingResponse
		_ = copier.Copy(&b, &v.RecentBookings[i])
		res.RecentBookings = append(res.RecentBookings, &b)
	}
	return res
}

func FromUserStats(v *queries.UserStatsView) *UserStatsResponse {
	res := &UserStatsResponse{
		TotalSpentCents:  v.TotalSpentCents,
		TotalBookings:    v.TotalBookings,
		RecentActivities: make([]*BillingResponse, 0, len(v.RecentActivities)),
		UsageSeries:      fromSeries(v.UsageSeries),
	}
	for i := range v.RecentActivities {
		var b BillingResponse
		_ = copier.Copy(&b, &v.RecentActivities[i])
		res.RecentActivities = append(res.RecentActivities, &b)
	}
	return res
}

func fromSeries(points []stats.Point) []SeriesPointResponse {
	out := make([]SeriesPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, SeriesPointResponse(p))
	}
	return out
}
