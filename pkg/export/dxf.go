package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/ChicagoDave/campusgrid/pkg/scene2d"
)

// DXF layer names.
const (
	LayerOutline   = "OUTLINE"
	LayerWalls     = "WALLS"
	LayerCorridors = "CORRIDORS"
	LayerDoors     = "DOORS"
)

const doorRadius = 0.03

// WriteDXF writes outlines, effective walls, corridors and doors on their
// own layers, in grid units. CAD y grows upward, so a y-down scene is
// mirrored.
func WriteDXF(path string, sc *scene2d.Scene2D) error {
	if sc == nil || len(sc.Records) == 0 {
		return ErrEmptyScene
	}
	flip := 1.0
	if sc.Metadata.YAxisDown {
		flip = -1.0
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		col  color.ColorNumber
	}{
		{LayerOutline, color.White},
		{LayerWalls, color.Yellow},
		{LayerCorridors, color.Cyan},
		{LayerDoors, color.Red},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.col, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("adding layer %s: %w", l.name, err)
		}
	}

	line := func(a, b [2]float64) error {
		_, err := d.Line(a[0], a[1]*flip, 0, b[0], b[1]*flip, 0)
		return err
	}

	for _, r := range sc.Records {
		if err := d.ChangeLayer(LayerOutline); err != nil {
			return err
		}
		for i := range r.Outline {
			if err := line(r.Outline[i], r.Outline[(i+1)%len(r.Outline)]); err != nil {
				return fmt.Errorf("record %d outline: %w", r.ID, err)
			}
		}

		if err := d.ChangeLayer(LayerWalls); err != nil {
			return err
		}
		for _, w := range r.EffectiveWalls {
			if err := line(w.Start, w.End); err != nil {
				return fmt.Errorf("record %d wall: %w", r.ID, err)
			}
		}

		if err := d.ChangeLayer(LayerCorridors); err != nil {
			return err
		}
		for _, c := range r.Corridors {
			for i := 0; i+1 < len(c.Points); i++ {
				if err := line(c.Points[i], c.Points[i+1]); err != nil {
					return fmt.Errorf("corridor %s: %w", c.ID, err)
				}
			}
		}

		if err := d.ChangeLayer(LayerDoors); err != nil {
			return err
		}
		for _, door := range r.Doors {
			if _, err := d.Circle(door.Position[0], door.Position[1]*flip, 0, doorRadius); err != nil {
				return fmt.Errorf("record %d door %d: %w", r.ID, door.ID, err)
			}
		}
	}
	return d.SaveAs(path)
}
