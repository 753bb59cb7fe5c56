package loyalty

// Tier is a loyalty level unlocked at MinPoints.
type Tier struct {
	Name      string
	MinPoints int
}

var (
	Bronze   = Tier{Name: "bronze", MinPoints: 0}
	Silver   = Tier{Name: "silver", MinPoints: 500}
	Gold     = Tier{Name: "gold", MinPoints: 2000}
	Platinum = Tier{Name: "platinum", MinPoints: 5000}
)

// Tiers is ordered by MinPoints ascending.
var Tiers = []Tier{Bronze, Silver, Gold, Platinum}

// TierProgress describes a point balance against the tier ladder.
// Next is nil on the top tier, where Percent is 100 and PointsToNext is 0.
type TierProgress struct {
	Points       int
	Current      Tier
	Next         *Tier
	Percent      int
	PointsToNext int
}

// TierFor returns the highest tier whose threshold points reach.
func TierFor(points int) Tier {
	current := Tiers[0]
	for _, tier := range Tiers {
		if points >= tier.MinPoints {
			current = tier
		}
	}
	return current
}

// Progress places points on the ladder. Negative balances count as zero.
func Progress(points int) TierProgress {
	points = max(points, 0)

	idx := 0
	for i, tier := range Tiers {
		if points >= tier.MinPoints {
			idx = i
		}
	}

	current := Tiers[idx]
	if idx == len(Tiers)-1 {
		return TierProgress{Points: points, Current: current, Percent: 100}
	}

	next := Tiers[idx+1]
	span := next.MinPoints - current.MinPoints

	return TierProgress{
		Points:       points,
		Current:      current,
		Next:         &next,
		Percent:      (points - current.MinPoints) * 100 / span,
		PointsToNext: next.MinPoints - points,
	}
}
