package rules

const (
	// Dead is the value of an empty cell
	Dead uint8 = 0
	// Alive is the value of a living cell
	Alive uint8 = 1
)

/*
ApplyConwayRules returns the next value of a cell given its current value and
the number of living neighbors around it.

A living cell survives with two or three neighbors, a dead cell is born with
exactly three, every other cell is dead in the next generation.
*/
func ApplyConwayRules(neighbors int, cell uint8) uint8 {
	if cell == Alive {
		if neighbors == 2 || neighbors == 3 {
			return Alive
		}
		return Dead
	}
	if neighbors == 3 {
		return Alive
	}
	return Dead
}
