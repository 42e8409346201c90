package workout

// NextWorkout determines which workout day type comes next given the split
// and the history so far.
//
// It rotates through the split from the most recently completed session's
// type. When the last type is not in the split, for example after the split
// changed while history existed, rotation restarts from the split's first
// entry.
func NextWorkout(split []Type, history []Session) Type {
	if len(split) == 0 {
		return ""
	}
	if len(history) == 0 {
		return split[0]
	}

	last := history[len(history)-1].Type
	lastIndex := -1
	for i, t := range split {
		if t == last {
			lastIndex = i
			break
		}
	}

	return split[(lastIndex+1)%len(split)]
}
