package fallback

import "marvelous/internal/branch"

// RevenuePoint is one month of the cash-flow chart, in the branch's
// native currency.
type RevenuePoint struct {
	Month    string
	Revenue  float64
	Bookings int
}

// Segment is one slice of the activity mix, in percent.
type Segment struct {
	Name  string
	Share int
}

// DashboardStats is the headline block of the overview page.
type DashboardStats struct {
	Revenue       float64 // native currency of the branch; EUR for Global
	UpcomingCount int
	ActiveClients int
	AverageRating float64
}

// DeliveryKPI tracks one deliverable class against its target, in
// days.
type DeliveryKPI struct {
	Type   string
	Actual float64
	Target float64
	Status string
}

// RadarAxis is one axis of the Studio-vs-Mariage comparison.
type RadarAxis struct {
	Subject  string
	Studio   int
	Mariage  int
	FullMark int
}

// MonthlyFinance is one month of the revenue-by-activity chart, EUR.
type MonthlyFinance struct {
	Month   string
	Mariage float64
	Studio  float64
	Goal    float64
}

var franceRevenue = []RevenuePoint{
	{Month: "Jan", Revenue: 4000, Bookings: 12},
	{Month: "Feb", Revenue: 3000, Bookings: 10},
	{Month: "Mar", Revenue: 5000, Bookings: 18},
	{Month: "Apr", Revenue: 8000, Bookings: 25},
	{Month: "May", Revenue: 9500, Bookings: 30},
	{Month: "Jun", Revenue: 12000, Bookings: 42},
}

// Authored natively in XAF; never derived by scaling the EUR series.
var camerounRevenue = []RevenuePoint{
	{Month: "Jan", Revenue: 1400000, Bookings: 6},
	{Month: "Feb", Revenue: 1150000, Bookings: 5},
	{Month: "Mar", Revenue: 2100000, Bookings: 9},
	{Month: "Apr", Revenue: 2600000, Bookings: 11},
	{Month: "May", Revenue: 3400000, Bookings: 14},
	{Month: "Jun", Revenue: 4250000, Bookings: 19},
}

var segmentation = []Segment{
	{Name: "Mariages", Share: 55},
	{Name: "Studio", Share: 30},
	{Name: "Events", Share: 15},
}

var financeSeries = []MonthlyFinance{
	{Month: "Jan", Mariage: 12000, Studio: 4500, Goal: 15000},
	{Month: "Fév", Mariage: 9500, Studio: 5200, Goal: 15000},
	{Month: "Mar", Mariage: 18000, Studio: 4800, Goal: 20000},
	{Month: "Avr", Mariage: 15500, Studio: 6100, Goal: 20000},
	{Month: "Mai", Mariage: 22000, Studio: 7500, Goal: 25000},
}

var deliveryKPIs = []DeliveryKPI{
	{Type: "Teaser (7j)", Actual: 5.2, Target: 7, Status: "Excellence"},
	{Type: "Film Long (30j)", Actual: 34.5, Target: 30, Status: "Delay"},
	{Type: "Album (15j)", Actual: 12.1, Target: 15, Status: "Good"},
	{Type: "Retouches (3j)", Actual: 1.8, Target: 3, Status: "Excellence"},
}

var radarAxes = []RadarAxis{
	{Subject: "Efficacité", Studio: 120, Mariage: 110, FullMark: 150},
	{Subject: "Vitesse", Studio: 98, Mariage: 130, FullMark: 150},
	{Subject: "Satisfaction", Studio: 140, Mariage: 130, FullMark: 150},
	{Subject: "Créativité", Studio: 110, Mariage: 100, FullMark: 150},
	{Subject: "Rigueur", Studio: 85, Mariage: 90, FullMark: 150},
}

// Revenue returns the monthly cash-flow series for a selector.
// Concrete branches report their native series; Global consolidates
// into EUR using the fixed reference rate, which is documented as an
// approximation on the dashboard itself.
func Revenue(sel branch.Selector) []RevenuePoint {
	switch sel {
	case branch.Selector(branch.Cameroun):
		out := make([]RevenuePoint, len(camerounRevenue))
		copy(out, camerounRevenue)
		return out
	case branch.Selector(branch.France):
		out := make([]RevenuePoint, len(franceRevenue))
		copy(out, franceRevenue)
		return out
	default:
		out := make([]RevenuePoint, len(franceRevenue))
		for i, fr := range franceRevenue {
			cm := camerounRevenue[i]
			out[i] = RevenuePoint{
				Month:    fr.Month,
				Revenue:  fr.Revenue + cm.Revenue/branch.EURToXAF,
				Bookings: fr.Bookings + cm.Bookings,
			}
		}
		return out
	}
}

// Stats returns the headline numbers for a selector, revenue in the
// selector's display currency.
func Stats(sel branch.Selector) DashboardStats {
	switch sel {
	case branch.Selector(branch.Cameroun):
		return DashboardStats{Revenue: 14900000, UpcomingCount: 9, ActiveClients: 52, AverageRating: 4.8}
	case branch.Selector(branch.France):
		return DashboardStats{Revenue: 45280, UpcomingCount: 15, ActiveClients: 104, AverageRating: 4.9}
	default:
		return DashboardStats{
			Revenue:       45280 + 14900000/branch.EURToXAF,
			UpcomingCount: 24,
			ActiveClients: 156,
			AverageRating: 4.9,
		}
	}
}

// Segmentation returns the activity mix (group-wide).
func Segmentation() []Segment {
	out := make([]Segment, len(segmentation))
	copy(out, segmentation)
	return out
}

// Finance returns the revenue-by-activity series used by the
// performance page.
func Finance() []MonthlyFinance {
	out := make([]MonthlyFinance, len(financeSeries))
	copy(out, financeSeries)
	return out
}

// DeliveryKPIs returns delivery time against target per deliverable.
func DeliveryKPIs() []DeliveryKPI {
	out := make([]DeliveryKPI, len(deliveryKPIs))
	copy(out, deliveryKPIs)
	return out
}

// Radar returns the Studio-vs-Mariage comparison axes.
func Radar() []RadarAxis {
	out := make([]RadarAxis, len(radarAxes))
	copy(out, radarAxes)
	return out
}
