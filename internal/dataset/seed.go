package dataset

// Headline figures shown in the dashboard HUD.
const (
	TotalIncidents = 800944
	ReportingYear  = 2024
)

var seedOrigins = []Origin{
	{Name: "Russia", Value: 32},
	{Name: "China", Value: 28},
	{Name: "Iran", Value: 18},
	{Name: "North Korea", Value: 12},
	{Name: "Non-state Actors", Value: 10},
}

var seedTargets = []Target{
	{Name: "Energy", Attacks: 28},
	{Name: "Government", Attacks: 24},
	{Name: "Financial", Attacks: 17},
	{Name: "Healthcare", Attacks: 12},
	{Name: "Transportation", Attacks: 10},
	{Name: "Water Systems", Attacks: 9},
}

var seedTrend = []Trend{
	{Year: "2020", Attacks: 320},
	{Year: "2021", Attacks: 368},
	{Year: "2022", Attacks: 412},
	{Year: "2023", Attacks: 465},
	{Year: "2024", Attacks: 502},
}

var seedSeverity = []Severity{
	{Category: "Energy", Low: 18, Medium: 42, High: 40},
	{Category: "Government", Low: 25, Medium: 40, High: 35},
	{Category: "Financial", Low: 22, Medium: 43, High: 35},
	{Category: "Healthcare", Low: 20, Medium: 45, High: 35},
	{Category: "Transportation", Low: 30, Medium: 42, High: 28},
	{Category: "Water Systems", Low: 26, Medium: 41, High: 33},
}

var seedTechniques = []Technique{
	{Name: "Phishing", Percentage: 35},
	{Name: "Malware", Percentage: 28},
	{Name: "DDoS", Percentage: 17},
	{Name: "Zero-day", Percentage: 12},
	{Name: "Supply Chain", Percentage: 8},
}
