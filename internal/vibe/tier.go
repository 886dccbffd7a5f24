package vibe

// Tier maps a final VIBE onto its interpretation band. The bands are
// descriptive, never enforced by the pipeline.
func Tier(vibe float64) string {
	switch {
	case vibe >= 140:
		return "MVP-level"
	case vibe >= 125:
		return "All-NBA"
	case vibe >= 115:
		return "Strong starter"
	case vibe >= 90:
		return "League average"
	default:
		return "Below-average impact"
	}
}
