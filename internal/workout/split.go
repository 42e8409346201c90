package workout

// GenerateSplit maps a weekly training day count to the recurring sequence
// of workout day types.
//
// Day counts outside the table fall back to the three day split instead of
// failing. This keeps onboarding non-blocking even for surprising input.
func GenerateSplit(daysPerWeek int) []Type {
	switch daysPerWeek {
	case 2, 3:
		return []Type{TypePush, TypePull, TypeLegs}
	case 4:
		return []Type{TypePush, TypePull, TypeLegs, TypeArms}
	case 5:
		return []Type{TypePush, TypePull, TypeLegs, TypeArms, TypeUpper}
	case 6:
		return []Type{TypePush, TypePull, TypeLegs, TypeArms, TypeUpper, TypeLower}
	default:
		return []Type{TypePush, TypePull, TypeLegs}
	}
}
