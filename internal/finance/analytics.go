package finance

// Analytics is the static performance overview shown on the insights tab.
type Analytics struct {
	WeeklySales       []DaySales        `json:"weeklySales"`
	ProductCategories []CategoryShare   `json:"productCategories"`
	CustomerSegments  []CustomerSegment `json:"customerSegments"`
	Recommendations   []Recommendation  `json:"recommendations"`
}

type DaySales struct {
	Day          string  `json:"day"`
	Sales        float64 `json:"sales"`
	Transactions int     `json:"transactions"`
}

type CategoryShare struct {
	Name    string `json:"name"`
	Percent int    `json:"percent"`
}

type CustomerSegment struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
	Growth  int    `json:"growth"`
}

type Recommendation struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Effort      string `json:"effort"`
}

func StaticAnalytics() Analytics {
	return Analytics{
		WeeklySales: []DaySales{
			{"Mon", 15000, 45},
			{"Tue", 18000, 52},
			{"Wed", 22000, 61},
			{"Thu", 19000, 48},
			{"Fri", 25000, 67},
			{"Sat", 32000, 89},
			{"Sun", 28000, 76},
		},
		ProductCategories: []CategoryShare{
			{"Dairy Feed", 35},
			{"Poultry Feed", 25},
			{"Swine Feed", 20},
			{"Aquaculture", 12},
			{"Others", 8},
		},
		CustomerSegments: []CustomerSegment{
			{"Regular Farmers", 156, 12},
			{"New Farmers", 23, 8},
			{"Large-Scale Farms", 67, -3},
		},
		Recommendations: []Recommendation{
			{
				Type:        "Revenue",
				Title:       "Increase Weekend Farmer Promotions",
				Description: "Your Saturday sales are 40% higher. Consider special weekend offers for farmers.",
				Impact:      "High",
				Effort:      "Low",
			},
			{
				Type:        "Inventory",
				Title:       "Expand Poultry Feed Products",
				Description: "Poultry feed represents 35% of sales but only 25% of inventory space.",
				Impact:      "Medium",
				Effort:      "Medium",
			},
			{
				Type:        "Customer",
				Title:       "Farmer Loyalty Program",
				Description: "Implement a simple loyalty card system to improve farmer retention.",
				Impact:      "High",
				Effort:      "High",
			},
		},
	}
}

// WeeklyTotal sums the weekly sales figures.
func (a Analytics) WeeklyTotal() float64 {
	var total float64
	for _, d := range a.WeeklySales {
		total += d.Sales
	}

	return total
}
