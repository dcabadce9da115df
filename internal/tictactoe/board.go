package tictactoe

import "strings"

const (
	Empty int8 = 0
	Human int8 = -1
	AI    int8 = 1
)

const Size = 9

// Board is a flattened 3x3 grid, cell index = row*3 + col.
type Board [Size]int8

var lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Input is the board as network input.
func (b *Board) Input() []float64 {
	var result = make([]float64, Size)
	for i, cell := range b {
		result[i] = float64(cell)
	}
	return result
}

func (b *Board) IsLegal(pos int) bool {
	return pos >= 0 && pos < Size && b[pos] == Empty
}

func (b *Board) LegalMoves() []int {
	var result []int
	for i, cell := range b {
		if cell == Empty {
			result = append(result, i)
		}
	}
	return result
}

func (b *Board) Place(pos int, player int8) bool {
	if !b.IsLegal(pos) {
		return false
	}
	b[pos] = player
	return true
}

// Winner returns the player owning a full line, or Empty.
func (b *Board) Winner() int8 {
	for _, line := range lines {
		var a = b[line[0]]
		if a != Empty && a == b[line[1]] && a == b[line[2]] {
			return a
		}
	}
	return Empty
}

func (b *Board) Full() bool {
	for _, cell := range b {
		if cell == Empty {
			return false
		}
	}
	return true
}

func (b *Board) String() string {
	var sb = &strings.Builder{}
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(symbol(b[row*3+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(cell int8) string {
	switch cell {
	case Human:
		return "X"
	case AI:
		return "O"
	}
	return "#"
}
