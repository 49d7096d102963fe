package pipeline

// Injection schedule search space.
//
// Below threeStageThreshold target points the planner uses two
// inject+smooth passes; at or above it, three.
const (
	threeStageThreshold = 100.0

	// Two-stage search ranges (inclusive).
	twoStageFirstMin  = 4
	twoStageFirstMax  = 6
	twoStageSecondMin = 1
	twoStageSecondMax = 8

	// Three-stage search ranges (inclusive).
	threeStageFirstMin  = 1
	threeStageFirstMax  = 5
	threeStageSecondMin = 1
	threeStageSecondMax = 8
	threeStageThirdMin  = 1
	threeStageThirdMax  = 7
)

// ScheduleLen is the number of entries in every schedule. Unused passes
// carry a zero count.
const ScheduleLen = 3

// Pipeline stage capacities.
const (
	stagesPerPass        = 2 // inject + smooth
	defaultStageCapacity = ScheduleLen * stagesPerPass
)
