package model

// DefaultRegistry returns a fresh registry with the built-in patterns
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultPatterns()...)
	if err != nil {
		panic(err)
	}
	return r
}

func defaultPatterns() []Pattern {
	return []Pattern{
		MustPattern("glider", [][]Cell{
			{1, 0, 0},
			{0, 1, 1},
			{1, 1, 0},
		}),
		MustPattern("blinker", [][]Cell{
			{1, 1, 1},
		}),
		MustPattern("block", [][]Cell{
			{1, 1},
			{1, 1},
		}),
		MustPattern("beehive", [][]Cell{
			{0, 1, 1, 0},
			{1, 0, 0, 1},
			{0, 1, 1, 0},
		}),
		MustPattern("toad", [][]Cell{
			{0, 1, 1, 1},
			{1, 1, 1, 0},
		}),
		MustPattern("beacon", [][]Cell{
			{1, 1, 0, 0},
			{1, 1, 0, 0},
			{0, 0, 1, 1},
			{0, 0, 1, 1},
		}),
		MustPattern("lwss", [][]Cell{
			{0, 1, 0, 0, 1},
			{1, 0, 0, 0, 0},
			{1, 0, 0, 0, 1},
			{1, 1, 1, 1, 0},
		}),
		MustPattern("r-pentomino", [][]Cell{
			{0, 1, 1},
			{1, 1, 0},
			{0, 1, 0},
		}),
		MustPattern("diehard", [][]Cell{
			{0, 0, 0, 0, 0, 0, 1, 0},
			{1, 1, 0, 0, 0, 0, 0, 0},
			{0, 1, 0, 0, 0, 1, 1, 1},
		}),
		MustPattern("acorn", [][]Cell{
			{0, 1, 0, 0, 0, 0, 0},
			{0, 0, 0, 1, 0, 0, 0},
			{1, 1, 0, 0, 1, 1, 1},
		}),
	}
}
