package afterglow

// nextAlive applies the B3/S23 rule: two live neighbors keep the current
// state, three give life, anything else kills.
func nextAlive(alive bool, neighbors int) bool {
	switch neighbors {
	case 2:
		return alive
	case 3:
		return true
	default:
		return false
	}
}

// neighborOffsets lists the Moore neighborhood in row-major order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}
