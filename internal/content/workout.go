// Package content holds the static reference content served by the API:
// workout plan variants, meal suggestions and motivational messages.
// Everything here is hand-authored, read-only and safe for concurrent use.
package content

// Exercise is a single exercise prescription within a workout day.
type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Rest string `json:"rest"`
}

// WorkoutDay groups the exercises for one day (or day group) of a routine.
type WorkoutDay struct {
	Day       string     `json:"day"`
	Focus     string     `json:"focus"`
	Exercises []Exercise `json:"exercises"`
}

// WorkoutPlan is a fixed routine variant plus a trailing free-text note.
type WorkoutPlan struct {
	Type    string       `json:"type"`
	Routine []WorkoutDay `json:"routine"`
	Notes   string       `json:"notes"`
}

var gymPlan = WorkoutPlan{
	Type: "Gym",
	Routine: []WorkoutDay{
		{
			Day:   "Monday",
			Focus: "Chest and Triceps",
			Exercises: []Exercise{
				{Name: "Bench Press", Sets: "4x10", Rest: "60s"},
				{Name: "Incline Bench Press", Sets: "3x12", Rest: "60s"},
				{Name: "Dumbbell Fly", Sets: "3x12", Rest: "45s"},
				{Name: "Triceps Pushdown", Sets: "3x15", Rest: "45s"},
				{Name: "Skull Crusher", Sets: "3x12", Rest: "45s"},
			},
		},
		{
			Day:   "Wednesday",
			Focus: "Back and Biceps",
			Exercises: []Exercise{
				{Name: "Lat Pulldown", Sets: "4x10", Rest: "60s"},
				{Name: "Bent-Over Row", Sets: "3x12", Rest: "60s"},
				{Name: "Pullover", Sets: "3x12", Rest: "45s"},
				{Name: "Barbell Curl", Sets: "3x12", Rest: "45s"},
				{Name: "Hammer Curl", Sets: "3x12", Rest: "45s"},
			},
		},
		{
			Day:   "Friday",
			Focus: "Legs and Shoulders",
			Exercises: []Exercise{
				{Name: "Squat", Sets: "4x12", Rest: "90s"},
				{Name: "Leg Press", Sets: "3x15", Rest: "60s"},
				{Name: "Leg Extension", Sets: "3x12", Rest: "45s"},
				{Name: "Overhead Press", Sets: "4x10", Rest: "60s"},
				{Name: "Lateral Raise", Sets: "3x15", Rest: "45s"},
			},
		},
	},
	Notes: "20-30 min of cardio after training or on alternate days",
}

var homePlan = WorkoutPlan{
	Type: "Home (Functional)",
	Routine: []WorkoutDay{
		{
			Day:   "Monday/Wednesday/Friday",
			Focus: "Full Body",
			Exercises: []Exercise{
				{Name: "Push-Ups", Sets: "3x12", Rest: "45s"},
				{Name: "Bodyweight Squat", Sets: "4x15", Rest: "45s"},
				{Name: "Plank", Sets: "3x45s", Rest: "30s"},
				{Name: "Lunge", Sets: "3x12 each leg", Rest: "45s"},
				{Name: "Burpees", Sets: "3x10", Rest: "60s"},
				{Name: "Mountain Climbers", Sets: "3x20", Rest: "45s"},
			},
		},
		{
			Day:   "Tuesday/Thursday",
			Focus: "Cardio + Core",
			Exercises: []Exercise{
				{Name: "Jumping Jacks", Sets: "3x30", Rest: "30s"},
				{Name: "Crunches", Sets: "3x20", Rest: "30s"},
				{Name: "Bicycle Crunches", Sets: "3x20", Rest: "30s"},
				{Name: "Side Plank", Sets: "3x30s each side", Rest: "30s"},
				{Name: "High Knees", Sets: "3x30s", Rest: "30s"},
			},
		},
	},
	Notes: "Always warm up for 5 minutes before starting",
}

// WorkoutPlanFor returns the fixed plan variant for the given gym attendance.
// Pure function: identical input always yields identical output.
func WorkoutPlanFor(gymAttendance bool) WorkoutPlan {
	if gymAttendance {
		return gymPlan
	}
	return homePlan
}
