package quiz

// pointValues maps each difficulty to the points a correct answer earns.
var pointValues = map[Difficulty]int{
	DifficultyEasy:   1,
	DifficultyMedium: 2,
	DifficultyHard:   3,
}

// PointsFor returns the point value of d, or 0 for an unknown level.
func PointsFor(d Difficulty) int {
	return pointValues[d]
}

// Score is a running, non-decreasing point total.
type Score struct {
	total int
}

// Award adds the points for d and returns the new total.
func (s *Score) Award(d Difficulty) int {
	s.total += PointsFor(d)
	return s.total
}

// Total returns the current point total.
func (s *Score) Total() int {
	return s.total
}
