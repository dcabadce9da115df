package dataset

// Board cells are -1 for the human, 1 for the engine and 0 when empty.
// Targets mark the preferred reply. Some positions appear several times with
// different replies.
var ticTacToe = [][2][9]float64{
	{{-1, 0, 0, 0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 1, 0, 0, 0, 0}},
	{{0, 0, -1, 0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 1, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 0, 0, -1, 0, 0}, {0, 0, 0, 0, 1, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 0, 0, 0, 0, -1}, {0, 0, 0, 0, 1, 0, 0, 0, 0}},
	{{-1, -1, 0, 0, 1, 0, 0, 0, 0}, {0, 0, 1, 0, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, -1, 1, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 1, 0, 0}},
	{{0, 0, 0, 0, 1, 0, 0, -1, -1}, {0, 0, 0, 0, 0, 0, 1, 0, 0}},
	{{0, 0, 0, 0, 1, -1, 0, 0, -1}, {0, 0, 1, 0, 0, 0, 0, 0, 0}},
	{{0, -1, -1, 0, 1, 0, 0, 0, 0}, {1, 0, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, 0, -1, 1, -1, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 0, 1}},
	{{0, 0, 0, 0, 1, 0, -1, -1, 0}, {0, 0, 0, 0, 0, 0, 0, 0, 1}},
	{{0, 0, 0, -1, 1, 0, -1, 0, 0}, {1, 0, 0, 0, 0, 0, 0, 0, 0}},
	{{-1, 0, -1, 0, 1, 0, 0, 0, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{-1, 0, -1, 0, 1, 0, 0, 0, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 1, 0, -1, 0, -1}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, 0, 0, 1, 0, -1, 0, -1}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, -1, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, 0, -1}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, -1, 0, 1, 0, -1, 0, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, -1, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, -1, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, 0, 0, -1, 0}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, 0, -1, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, 0, -1, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{0, 0, -1, 0, 1, 0, 0, -1, 0}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, -1, 0, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{0, -1, 0, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, -1, 0, 0, 1, 0, -1, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, -1, 0, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{0, -1, 0, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, -1, 0, 0, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{-1, 0, 0, 0, 1, -1, 0, 0, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, -1, 0, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{-1, 0, 0, 0, 1, -1, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, 0, 0, 1, -1, -1, 0, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 1, -1, -1, 0, 0}, {0, 0, 0, 1, 0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, 1, -1, -1, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, -1, -1, 1, 0, 0, 0, 0}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, -1, -1, 1, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, 0, -1, -1, 1, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, 0, -1, 1, 0, 0, 0, -1}, {0, 1, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, 0, -1, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 1, 0, 0, 0}},
	{{0, 0, 0, -1, 1, 0, 0, 0, -1}, {0, 0, 0, 0, 0, 0, 0, 1, 0}},
	{{0, 0, 0, 0, -1, 0, 0, 0, 0}, {1, 0, 0, 0, 0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, -1, 0, 0, 0, 0}, {0, 0, 1, 0, 0, 0, 0, 0, 0}},
	{{0, 0, 0, 0, -1, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 1, 0, 0}},
	{{0, 0, 0, 0, -1, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 0, 1}},
}

// TicTacToe returns a fresh copy of the built-in opening corpus.
func TicTacToe() []Sample {
	var result = make([]Sample, 0, len(ticTacToe))
	for _, item := range ticTacToe {
		var input, target = item[0], item[1]
		result = append(result, Sample{
			Input:  append([]float64(nil), input[:]...),
			Target: append([]float64(nil), target[:]...),
		})
	}
	return result
}
