package outline

import (
	"sort"

	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
)

// SortDoors orders doors by id, which is their perimeter order.
func SortDoors(doors []campus.Door) {
	sort.SliceStable(doors, func(i, j int) bool { return doors[i].ID < doors[j].ID })
}

// Reconstruct rebuilds a single-cell outline from its doors. Doors are
// sorted in place and deep doors clamped before the path is assembled; the
// ids of clamped doors are returned alongside the path.
func Reconstruct(doors []campus.Door, anchor geo.Point, yDown bool) ([]geo.Point, []int) {
	SortDoors(doors)
	moved := UpdateDeepDoors(doors, anchor)
	return Assemble(doors, anchor, yDown), moved
}

// Assemble joins consecutive doors with right-angle corners. When the second
// door of a pair is deep the pair gets a three point notch instead. The
// result is simplified as a closed path.
func Assemble(doors []campus.Door, anchor geo.Point, yDown bool) []geo.Point {
	n := len(doors)
	if n == 0 {
		return nil
	}
	path := make([]geo.Point, 0, n*4)
	for i := 0; i < n; i++ {
		d1 := doors[i].Point()
		d2 := doors[(i+1)%n].Point()
		path = append(path, d1)

		if n >= minDeepDoors {
			after := doors[(i+2)%n].Point()
			if _, deep := IsDeep(d1, d2, after, anchor); deep {
				path = append(path, geo.CutoutCorner(d1, d2, true, yDown)...)
				continue
			}
		}
		path = append(path, geo.Corner(d1, d2, true, yDown))
	}
	return geo.Simplify(path, true)
}
