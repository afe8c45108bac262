package campus

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
)

// FileName is the input graph looked up in a project directory.
const FileName = "buildings.json"

// rawBuilding is the external 1-indexed input format.
type rawBuilding struct {
	ID         int                `json:"id"`
	X          float64            `json:"x"`
	Y          float64            `json:"y"`
	Entrances  []Door             `json:"entrances"`
	Congestion []CongestionSample `json:"congestion"`
	MergedX    []float64          `json:"merged_x,omitempty"`
	MergedY    []float64          `json:"merged_y,omitempty"`
}

// Decode parses a JSON array of buildings and converts raw 1-indexed
// coordinates to grid coordinates.
func Decode(r io.Reader) ([]Building, error) {
	var raw []rawBuilding
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing buildings JSON: %w", err)
	}
	out := make([]Building, 0, len(raw))
	for _, rb := range raw {
		if len(rb.MergedX) != len(rb.MergedY) {
			return nil, fmt.Errorf("building %d: merged_x has %d entries, merged_y has %d",
				rb.ID, len(rb.MergedX), len(rb.MergedY))
		}
		b := Building{
			ID:         rb.ID,
			Anchor:     rawCell(rb.X, rb.Y),
			Congestion: rb.Congestion,
		}
		for _, d := range rb.Entrances {
			d.X--
			d.Y--
			b.Doors = append(b.Doors, d)
		}
		for i := range rb.MergedX {
			b.Merged = append(b.Merged, rawCell(rb.MergedX[i], rb.MergedY[i]))
		}
		out = append(out, b)
	}
	return out, nil
}

// Encode writes buildings back in the 1-indexed input format.
func Encode(w io.Writer, buildings []Building) error {
	raw := make([]rawBuilding, 0, len(buildings))
	for _, b := range buildings {
		rb := rawBuilding{
			ID:         b.ID,
			X:          float64(b.Anchor.X + 1),
			Y:          float64(b.Anchor.Y + 1),
			Entrances:  make([]Door, 0, len(b.Doors)),
			Congestion: b.Congestion,
		}
		for _, d := range b.Doors {
			d.X++
			d.Y++
			rb.Entrances = append(rb.Entrances, d)
		}
		for _, c := range b.Merged {
			rb.MergedX = append(rb.MergedX, float64(c.X+1))
			rb.MergedY = append(rb.MergedY, float64(c.Y+1))
		}
		raw = append(raw, rb)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(raw)
}

// Load reads an input graph file.
func Load(path string) ([]Building, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening buildings file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// LoadProject reads buildings.json from a project directory.
func LoadProject(projectDir string) ([]Building, error) {
	return Load(filepath.Join(projectDir, FileName))
}

// Save writes buildings to path in the input format.
func Save(path string, buildings []Building) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating buildings file: %w", err)
	}
	if err := Encode(f, buildings); err != nil {
		f.Close()
		return fmt.Errorf("writing buildings JSON: %w", err)
	}
	return f.Close()
}

func rawCell(x, y float64) Cell {
	return Cell{X: int(math.Floor(x)) - 1, Y: int(math.Floor(y)) - 1}
}
