package engine

// MaxProgress returns the highest value in progress, or 0 when it is empty
func MaxProgress(progress []int) int {
	best := 0
	for i, p := range progress {
		if i == 0 || p > best {
			best = p
		}
	}
	return best
}

// Winners returns every name whose progress equals the maximum, in input order
func Winners(names []string, progress []int) []string {
	if len(names) == 0 || len(names) != len(progress) {
		return nil
	}

	best := MaxProgress(progress)
	var winners []string
	for i, p := range progress {
		if p == best {
			winners = append(winners, names[i])
		}
	}
	return winners
}

// CarNames extracts the names from a list of cars
func CarNames(cars []Car) []string {
	names := make([]string, len(cars))
	for i, car := range cars {
		names[i] = car.Name
	}
	return names
}
