package nn

import "math/rand"

// BestAction returns the legal index with the highest output. Ties go to the
// smaller index. Indices outside output are ignored.
// When nothing legal can be ranked it returns a random index in
// [0, actionSpace) so that a caller in an exhausted state still gets a move.
func BestAction(output []float64, legal []int, actionSpace int) int {
	var best = -1
	for _, index := range legal {
		if index < 0 || index >= len(output) {
			continue
		}
		if best == -1 ||
			output[index] > output[best] ||
			output[index] == output[best] && index < best {
			best = index
		}
	}
	if best != -1 {
		return best
	}
	if actionSpace <= 0 {
		return 0
	}
	return rand.Intn(actionSpace)
}

// BestAction ranks the legal actions for input.
func (n *Network) BestAction(input []float64, legal []int) (int, error) {
	fr, err := n.Forward(input)
	if err != nil {
		return 0, err
	}
	return BestAction(fr.Output, legal, n.outputSize), nil
}
