package workout

// Baseline and step for the double progression scheme. Units are kilograms
// as far as the UI is concerned but nothing here depends on that.
const (
	baselineWeight  = 20.0
	weightIncrement = 2.5
)

// LastCompletedSets returns the completed sets for the exercise from the
// most recent session that has any sets logged for it. The result is empty
// when the exercise has never been performed.
func LastCompletedSets(history []Session, exerciseID string) []Set {
	for i := len(history) - 1; i >= 0; i-- {
		for _, exerciseSession := range history[i].Exercises {
			if exerciseSession.ExerciseID != exerciseID || len(exerciseSession.Sets) == 0 {
				continue
			}
			var completed []Set
			for _, set := range exerciseSession.Sets {
				if set.Completed {
					completed = append(completed, set)
				}
			}
			return completed
		}
	}
	return nil
}

// SuggestProgression proposes the next weight and reps for an exercise based
// on the last set of its most recent performance.
//
// The scheme is classic double progression over the exercise's rep range:
// climb the range one rep at a time, add load and restart at the bottom once
// the top is reached, back off the load when even the bottom was missed.
func SuggestProgression(lastSets []Set, exercise Exercise) Suggestion {
	lo, hi := exercise.RepRange.Min, exercise.RepRange.Max

	if len(lastSets) == 0 {
		return Suggestion{Weight: baselineWeight, Reps: lo}
	}

	last := lastSets[len(lastSets)-1]
	switch {
	case last.Reps >= hi:
		return Suggestion{Weight: last.Weight + weightIncrement, Reps: lo}
	case last.Reps >= lo:
		return Suggestion{Weight: last.Weight, Reps: min(last.Reps+1, hi)}
	default:
		return Suggestion{Weight: max(last.Weight-weightIncrement, 0), Reps: lo}
	}
}
