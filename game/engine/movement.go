package engine

// ShouldAdvance reports whether a draw moves a car forward
func ShouldAdvance(draw int, config *GameConfig) bool {
	return draw >= config.AdvanceThreshold
}

// MoveCars draws once for every car in order and advances the ones whose
// draw meets the threshold. It returns which cars moved.
func (rs *RaceState) MoveCars(picker NumberPicker, config *GameConfig) []bool {
	advanced := make([]bool, len(rs.Cars))
	for i := range rs.Cars {
		draw := picker.PickNumberInRange(config.MinDraw, config.MaxDraw)
		if ShouldAdvance(draw, config) {
			rs.Cars[i].Position++
			advanced[i] = true
		}
	}
	rs.Round++
	return advanced
}

// Snapshot copies the cars so callers cannot mutate the race
func (rs *RaceState) Snapshot() []Car {
	cars := make([]Car, len(rs.Cars))
	copy(cars, rs.Cars)
	return cars
}

// Progress returns the progress vector, aligned with the car order
func (rs *RaceState) Progress() []int {
	progress := make([]int, len(rs.Cars))
	for i, car := range rs.Cars {
		progress[i] = car.Position
	}
	return progress
}
