package usecases

import (
	"slices"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/repositories"
)

type DashboardUsecase interface {
	GetDashboard(startDate, endDate string) (entities.DashboardResponse, error)
}

type dashboardUsecase struct {
	dashboardRepo repositories.DashboardRepository
	now           func() time.Time
}

func NewDashboardUsecase(dashboardRepo repositories.DashboardRepository, now func() time.Time) DashboardUsecase {
	if now == nil {
		now = time.Now
	}
	return &dashboardUsecase{dashboardRepo: dashboardRepo, now: now}
}

func (u *dashboardUsecase) GetDashboard(startDate, endDate string) (entities.DashboardResponse, error) {
	if startDate == "" || endDate == "" {
		return entities.DashboardResponse{}, badRequest("start date and end date are required")
	}
	start, err := time.Parse(entities.DateLayout, startDate)
	if err != nil {
		return entities.DashboardResponse{}, badRequest("invalid start date format, use YYYY-MM-DD")
	}
	end, err := time.Parse(entities.DateLayout, endDate)
	if err != nil {
		return entities.DashboardResponse{}, badRequest("invalid end date format, use YYYY-MM-DD")
	}
	if start.After(end) {
		return entities.DashboardResponse{}, badRequest("start date must be smaller than end date")
	}

	rooms, err := u.dashboardRepo.GetRooms()
	if err != nil {
		return entities.DashboardResponse{}, internal()
	}
	totalUser, err := u.dashboardRepo.GetTotalUsers()
	if err != nil {
		return entities.DashboardResponse{}, internal()
	}
	bookings, err := u.dashboardRepo.GetBookings(start, end)
	if err != nil {
		return entities.DashboardResponse{}, internal()
	}
	today := u.now().Format(entities.DateLayout)
	todays, err := u.dashboardRepo.GetBookings(entities.StartOfDay(u.now()), entities.StartOfDay(u.now()))
	if err != nil {
		return entities.DashboardResponse{}, internal()
	}

	response := entities.DashboardResponse{Message: "get dashboard data success"}
	data := &response.Data
	data.TotalRoom = len(rooms)
	data.TotalUser = totalUser
	data.TotalBooking = len(bookings)

	perRoom := map[int]*entities.DashboardRoom{}
	for _, r := range rooms {
		perRoom[r.ID] = &entities.DashboardRoom{ID: r.ID, Name: r.Name}
	}
	monthly := map[string]float64{}
	for _, b := range bookings {
		data.TotalRevenue += b.Price
		monthly[b.BookingDate[:7]] += b.Price
		if stat, ok := perRoom[b.RoomID]; ok {
			stat.Revenue += b.Price
			stat.TotalBooking++
		}
	}

	data.Rooms = make([]entities.DashboardRoom, 0, len(rooms))
	for _, r := range rooms {
		stat := perRoom[r.ID]
		if data.TotalBooking > 0 {
			stat.PercentageOfUsage = float64(stat.TotalBooking) / float64(data.TotalBooking) * 100
		}
		data.Rooms = append(data.Rooms, *stat)
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	slices.Sort(months)
	data.MonthlyRevenue = make([]entities.MonthlyRevenue, 0, len(months))
	for _, m := range months {
		data.MonthlyRevenue = append(data.MonthlyRevenue, entities.MonthlyRevenue{Month: m, Revenue: monthly[m]})
	}

	occupied := map[int]bool{}
	for _, b := range todays {
		occupied[b.RoomID] = true
	}
	data.Occupancy = entities.Occupancy{
		Date:      today,
		Occupied:  len(occupied),
		Available: max(len(rooms)-len(occupied), 0),
	}
	return response, nil
}
