package entities

// route GET /dashboard
type DashboardRoom struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Revenue           float64 `json:"revenue"`
	TotalBooking      int     `json:"totalBooking"`
	PercentageOfUsage float64 `json:"percentageOfUsage"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type Occupancy struct {
	Date      string `json:"date"`
	Occupied  int    `json:"occupied"`
	Available int    `json:"available"`
}

type DashboardData struct {
	TotalRoom      int              `json:"totalRoom"`
	TotalUser      int              `json:"totalUser"`
	TotalBooking   int              `json:"totalBooking"`
	TotalRevenue   float64          `json:"totalRevenue"`
	Rooms          []DashboardRoom  `json:"rooms"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
	Occupancy      Occupancy        `json:"occupancy"`
}

type DashboardResponse struct {
	Message string        `json:"message"`
	Data    DashboardData `json:"data"`
}
