package engine

// MaxChain caps the cascade multiplier.
const MaxChain = 5

// BaseScore is the flat award for a detection pass that matched n cells.
func BaseScore(n int) int {
	switch {
	case n >= 6:
		return 200
	case n == 5:
		return 100
	case n == 4:
		return 50
	case n == 3:
		return 30
	default:
		return 0
	}
}

// SpecialBonus awards 10 points per cell destroyed by special effects
// beyond the original match.
func SpecialBonus(extra int) int {
	if extra < 0 {
		return 0
	}
	return extra * 10
}

// Award is the total for one cascade iteration.
func Award(matched, destroyed, chain int) int {
	return (BaseScore(matched) + SpecialBonus(destroyed-matched)) * chain
}

func nextChain(chain int) int {
	if chain >= MaxChain {
		return MaxChain
	}
	return chain + 1
}
