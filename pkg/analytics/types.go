package analytics

// WindowsPerHour is the number of five-minute samples in an hour.
const WindowsPerHour = 12

// CampusStats holds the figures resolved from a loaded campus.
type CampusStats struct {
	Buildings       int `json:"buildings"`
	MergedBuildings int `json:"merged_buildings"`
	Cells           int `json:"cells"`
	Doors           int `json:"doors"`
	AccessibleDoors int `json:"accessible_doors"`
	OpenBuildings   int `json:"open_buildings"`

	// FootprintRatio is the share of grid cells covered by buildings.
	FootprintRatio float64 `json:"footprint_ratio"`

	Congestion []BuildingCongestion `json:"congestion"`
	// CampusPeak is the window with the highest summed average over all
	// buildings that report a full day.
	CampusPeak *Window `json:"campus_peak,omitempty"`
}

// BuildingCongestion summarizes the samples of one building.
type BuildingCongestion struct {
	BuildingID  int     `json:"building_id"`
	Samples     int     `json:"samples"`
	DailyMean   float64 `json:"daily_mean"`
	Peak        Window  `json:"peak"`
	BusiestHour int     `json:"busiest_hour"`
	HourMean    float64 `json:"busiest_hour_mean"`
}

// Window is one five-minute window.
type Window struct {
	Index    int     `json:"index"`
	Timestep string  `json:"timestep"`
	Avg      float64 `json:"avg"`
}
