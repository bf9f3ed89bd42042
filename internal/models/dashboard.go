package models

// DashboardOverview is the metric card row of the home screen.
// Money values are in minor currency units.
type DashboardOverview struct {
	TotalRevenue    int64   `json:"totalRevenue"`
	SuccessfulCount int     `json:"successfulCount"`
	ConversionRate  float64 `json:"conversionRate"`
	ActiveCustomers int     `json:"activeCustomers"`
	TotalCount      int     `json:"totalCount"`
}

// RevenueSeries is a dense per-day revenue chart in major currency units.
type RevenueSeries struct {
	Categories []string  `json:"categories"`
	Data       []float64 `json:"data"`
}

// StatusBreakdown is a donut chart of payment counts per status.
type StatusBreakdown struct {
	Series []int    `json:"series"`
	Labels []string `json:"labels"`
}

// DashboardAnalytics groups the charts of the analytics screen.
type DashboardAnalytics struct {
	WindowDays      int             `json:"windowDays"`
	Revenue         RevenueSeries   `json:"revenue"`
	StatusBreakdown StatusBreakdown `json:"statusBreakdown"`
}
