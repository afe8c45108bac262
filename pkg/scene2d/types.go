package scene2d

// Scene2D is the complete 2D scene of a campus grid in grid units, ready
// for a top-down renderer or an exporter.
type Scene2D struct {
	Metadata Metadata   `json:"metadata"`
	Records  []Record2D `json:"records"`
}

// Metadata holds grid-level summary data.
type Metadata struct {
	GridSize      int    `json:"grid_size"`
	YAxisDown     bool   `json:"y_axis_down"`
	BuildingCount int    `json:"building_count"`
	MergedCount   int    `json:"merged_count"`
	DoorCount     int    `json:"door_count"`
	CorridorCount int    `json:"corridor_count"`
	GeneratedAt   string `json:"generated_at"`
}

// Record2D describes one building record in the 2D view.
type Record2D struct {
	ID             int          `json:"id"`
	BuildingID     int          `json:"building_id"`
	Cells          [][2]int     `json:"cells"`
	Outline        [][2]float64 `json:"outline"`
	EffectiveWalls []Wall2D     `json:"effective_walls"`
	Doors          []Door2D     `json:"doors"`
	Centers        []Center2D   `json:"centers"`
	Corridors      []Corridor2D `json:"corridors"`
	BoundingRect   [][2]float64 `json:"bounding_rect"`
	NormalOffset   [2]float64   `json:"normal_offset"`
	Open           bool         `json:"open"`
	Peak           *Peak2D      `json:"peak,omitempty"`
}

// Wall2D is an effective wall segment.
type Wall2D struct {
	Start  [2]float64 `json:"start"`
	End    [2]float64 `json:"end"`
	Source int        `json:"source"`
}

// Door2D is a snapped door with its derived placement.
type Door2D struct {
	ID            int          `json:"id"`
	Position      [2]float64   `json:"position"`
	Accessible    bool         `json:"accessible"`
	WallDirection string       `json:"wall_direction"`
	Orientation   string       `json:"orientation"`
	CorridorPath  [][2]float64 `json:"corridor_path"`
}

// Center2D is the center of one sub-cell.
type Center2D struct {
	Cell     [2]int     `json:"cell"`
	Position [2]float64 `json:"position"`
	Method   string     `json:"method"`
}

// Corridor2D is one corridor polyline.
type Corridor2D struct {
	ID     string       `json:"id"`
	Points [][2]float64 `json:"points"`
	Type   string       `json:"type"`
}

// Peak2D is the busiest congestion window of a building.
type Peak2D struct {
	Timestep string  `json:"timestep"`
	Avg      float64 `json:"avg"`
	Max      float64 `json:"max"`
}
