package game

import "math/rand/v2"

// RandomlyChooseFirstPlayer picks X or O with equal probability.
func RandomlyChooseFirstPlayer() PlayerMark {
	if rand.IntN(2) == 0 {
		return PlayerX
	}
	return PlayerO
}
