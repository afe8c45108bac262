package geo

// Simplify removes duplicate consecutive points and axis-aligned collinear
// midpoints from path. A closed path is treated as wrapping around; an open
// path always keeps its two endpoints.
func Simplify(path []Point, closed bool) []Point {
	out := make([]Point, len(path))
	copy(out, path)

	for changed := true; changed; {
		changed = false
		n := len(out)
		for i := 0; i < n && n > 1; i++ {
			if !closed && i == n-1 {
				break
			}
			if out[i].Equal(out[(i+1)%n]) {
				drop := (i + 1) % n
				out = append(out[:drop], out[drop+1:]...)
				changed = true
				break
			}
		}
		if changed {
			continue
		}
		if n < 3 {
			break
		}
		for i := 0; i < n; i++ {
			if !closed && (i == 0 || i == n-1) {
				continue
			}
			if AxisCollinear(out[(i-1+n)%n], out[i], out[(i+1)%n]) {
				out = append(out[:i], out[i+1:]...)
				changed = true
				break
			}
		}
	}
	return out
}
