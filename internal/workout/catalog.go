package workout

// exerciseCatalog maps each workout day type to its ordered exercise list.
// The order is significant: sessions create one exercise slot per entry in
// this order.
//
//nolint:gochecknoglobals // static reference data.
var exerciseCatalog = map[Type][]Exercise{
	TypePush: {
		{
			ID:          "flat_bench_press",
			Name:        "Flat Bench Press",
			MuscleGroup: "Chest",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Focus on controlled movement",
			Equipment:   "Barbell",
		},
		{
			ID:          "incline_dumbbell_press",
			Name:        "Incline Dumbbell Press",
			MuscleGroup: "Chest",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Upper chest focus",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "chest_machine_flyes",
			Name:        "Chest Machine Flyes",
			MuscleGroup: "Chest",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Stretch at bottom",
			Equipment:   "Machine",
		},
		{
			ID:          "dumbbell_shoulder_press",
			Name:        "Dumbbell Shoulder Press",
			MuscleGroup: "Shoulders",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Control the negative",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "dumbbell_lateral_raises",
			Name:        "Dumbbell Lateral Raises",
			MuscleGroup: "Shoulders",
			RepRange:    RepRange{Min: 12, Max: 20},
			Notes:       "Light weight, focus on form",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "single_arm_tricep_extension",
			Name:        "Single Arm Tricep Extension",
			MuscleGroup: "Triceps",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Keep elbow stable",
			Equipment:   "Dumbbell",
		},
		{
			ID:          "skull_crushers",
			Name:        "Skull Crushers",
			MuscleGroup: "Triceps",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Lower to forehead",
			Equipment:   "EZ Bar",
		},
	},
	TypePull: {
		{
			ID:          "lat_pulldown",
			Name:        "Shoulder Grip Lat Pulldown",
			MuscleGroup: "Lats",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Shoulder-width grip",
			Equipment:   "Cable machine",
		},
		{
			ID:          "machine_rowing",
			Name:        "Machine Rowing",
			MuscleGroup: "Back",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Squeeze shoulder blades",
			Equipment:   "Machine",
		},
		{
			ID:          "single_arm_dumbbell_rows",
			Name:        "Single Arm Dumbbell Rows",
			MuscleGroup: "Back",
			RepRange:    RepRange{Min: 12, Max: 12},
			Notes:       "Support with bench",
			Equipment:   "Dumbbell",
		},
		{
			ID:          "reverse_pec_dec",
			Name:        "Reverse Pec Dec",
			MuscleGroup: "Rear Delts",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Light weight, focus on rear delts",
			Equipment:   "Machine",
		},
		{
			ID:          "face_pulls",
			Name:        "Face Pulls",
			MuscleGroup: "Rear Delts",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Pull to face level",
			Equipment:   "Cable",
		},
		{
			ID:          "supinated_bicep_curls",
			Name:        "Supinated Alternating Bicep Curls",
			MuscleGroup: "Biceps",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Rotate as you curl",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "bicep_preacher_curl",
			Name:        "Bicep Preacher Curl",
			MuscleGroup: "Biceps",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Control the negative",
			Equipment:   "Preacher bench",
		},
	},
	TypeLegs: {
		{
			ID:          "squats",
			Name:        "Squats",
			MuscleGroup: "Legs",
			RepRange:    RepRange{Min: 10, Max: 15},
			Notes:       "Depth below parallel",
			Equipment:   "Barbell",
		},
		{
			ID:          "machine_leg_extensions",
			Name:        "Machine Leg Extensions",
			MuscleGroup: "Quadriceps",
			RepRange:    RepRange{Min: 12, Max: 20},
			Notes:       "Squeeze at top",
			Equipment:   "Machine",
		},
		{
			ID:          "machine_hamstring_curls",
			Name:        "Machine Hamstring Curls",
			MuscleGroup: "Hamstrings",
			RepRange:    RepRange{Min: 10, Max: 15},
			Notes:       "Full range of motion",
			Equipment:   "Machine",
		},
		{
			ID:          "leg_press",
			Name:        "Leg Press",
			MuscleGroup: "Legs",
			RepRange:    RepRange{Min: 10, Max: 20},
			Notes:       "Control the weight",
			Equipment:   "Machine",
		},
		{
			ID:          "weighted_cable_crunches",
			Name:        "Weighted Cable Crunches",
			MuscleGroup: "Abs",
			RepRange:    RepRange{Min: 10, Max: 15},
			Notes:       "Crunch down",
			Equipment:   "Cable",
		},
		{
			ID:          "leg_raises",
			Name:        "Leg Raises",
			MuscleGroup: "Abs",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Control the movement",
			Equipment:   "None",
		},
	},
	TypeArms: {
		{
			ID:          "ez_bar_bicep_curls",
			Name:        "EZ Bar Bicep Curls",
			MuscleGroup: "Biceps",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Go heavy",
			Equipment:   "EZ Bar",
		},
		{
			ID:          "incline_dumbbell_curls",
			Name:        "Incline Dumbbell Curls",
			MuscleGroup: "Biceps",
			RepRange:    RepRange{Min: 10, Max: 15},
			Notes:       "Focus on reps",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "tricep_pushdowns",
			Name:        "Tricep Pushdowns",
			MuscleGroup: "Triceps",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Keep elbows at sides",
			Equipment:   "Cable",
		},
		{
			ID:          "overhead_cable_tricep_extensions",
			Name:        "Overhead Cable Tricep Extensions",
			MuscleGroup: "Triceps",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Keep elbows up",
			Equipment:   "Cable",
		},
		{
			ID:          "wrist_curls",
			Name:        "Wrist Curls",
			MuscleGroup: "Forearms",
			RepRange:    RepRange{Min: 15, Max: 30},
			Notes:       "Light weight, high reps",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "hammer_curls",
			Name:        "Hammer Curls",
			MuscleGroup: "Biceps",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Neutral grip",
			Equipment:   "Dumbbells",
		},
	},
	TypeUpper: {
		{
			ID:          "weighted_dips",
			Name:        "Weighted Dips",
			MuscleGroup: "Chest/Triceps",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Lean forward for chest",
			Equipment:   "Dip station",
		},
		{
			ID:          "cable_crossovers",
			Name:        "Cable Crossovers",
			MuscleGroup: "Chest",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Squeeze at center",
			Equipment:   "Cable",
		},
		{
			ID:          "pull_ups",
			Name:        "Pull-ups",
			MuscleGroup: "Back",
			RepRange:    RepRange{Min: 8, Max: 12},
			Notes:       "Full range of motion",
			Equipment:   "Pull-up bar",
		},
		{
			ID:          "barbell_rowing",
			Name:        "Barbell Rowing",
			MuscleGroup: "Back",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Row to lower chest",
			Equipment:   "Barbell",
		},
		{
			ID:          "cable_lateral_raises",
			Name:        "Cable Lateral Raises",
			MuscleGroup: "Shoulders",
			RepRange:    RepRange{Min: 10, Max: 20},
			Notes:       "Constant tension",
			Equipment:   "Cable",
		},
		{
			ID:          "shrugs",
			Name:        "Shrugs",
			MuscleGroup: "Traps",
			RepRange:    RepRange{Min: 10, Max: 20},
			Notes:       "Squeeze at top",
			Equipment:   "Dumbbells",
		},
	},
	TypeLower: {
		{
			ID:          "hamstring_curls_lower",
			Name:        "Hamstring Curls",
			MuscleGroup: "Hamstrings",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Slow eccentric",
			Equipment:   "Machine",
		},
		{
			ID:          "hip_thrusts",
			Name:        "Hip Thrusts",
			MuscleGroup: "Glutes",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Squeeze glutes at top",
			Equipment:   "Barbell",
		},
		{
			ID:          "calf_raises",
			Name:        "Calf Raises",
			MuscleGroup: "Calves",
			RepRange:    RepRange{Min: 10, Max: 20},
			Notes:       "Full stretch and contraction",
			Equipment:   "Machine",
		},
		{
			ID:          "russian_splits",
			Name:        "Russian Splits",
			MuscleGroup: "Legs",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Control the descent",
			Equipment:   "Dumbbells",
		},
		{
			ID:          "planks",
			Name:        "Planks",
			MuscleGroup: "Core",
			RepRange:    RepRange{Min: 60, Max: 180},
			Notes:       "1 minute × 3 sets",
			Equipment:   "None",
		},
		{
			ID:          "dumbbell_pullovers",
			Name:        "Dumbbell Pullovers",
			MuscleGroup: "Lats/Chest",
			RepRange:    RepRange{Min: 8, Max: 15},
			Notes:       "Feel the stretch",
			Equipment:   "Dumbbell",
		},
	},
}

// minutesPerExercise drives the estimated session length shown before a
// workout starts.
const minutesPerExercise = 8

// ExercisesFor returns the catalog's ordered exercise list for the workout
// day type. The returned slice must not be modified.
func ExercisesFor(t Type) []Exercise {
	return exerciseCatalog[t]
}

// ExerciseByID looks up an exercise anywhere in the catalog.
func ExerciseByID(id string) (Exercise, bool) {
	for _, exercises := range exerciseCatalog {
		for _, exercise := range exercises {
			if exercise.ID == id {
				return exercise, true
			}
		}
	}
	return Exercise{}, false
}

// EstimatedMinutes returns the rough expected length of a session for the
// workout day type.
func EstimatedMinutes(t Type) int {
	return len(exerciseCatalog[t]) * minutesPerExercise
}
