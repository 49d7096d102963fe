package pipeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'planner'
func tracer() tracing.Trace {
	return tracing.Select("planner")
}

// ErrNoFeasibleSchedule indicates that no combination of injection counts
// fits the point budget. The planner then falls back to zero injection.
var ErrNoFeasibleSchedule = errors.New("no feasible injection schedule")

// ScheduleMode identifies which search produced a schedule.
type ScheduleMode int

const (
	// ModeTwoStage searches two injection counts; the third is always 0.
	ModeTwoStage ScheduleMode = iota

	// ModeThreeStage searches three injection counts.
	ModeThreeStage
)

// String returns a human-readable mode name.
func (m ScheduleMode) String() string {
	switch m {
	case ModeTwoStage:
		return "two-stage"
	case ModeThreeStage:
		return "three-stage"
	default:
		return fmt.Sprintf("ScheduleMode(%d)", int(m))
	}
}

// Schedule is the sequence of injection counts applied across successive
// inject+smooth passes. A zero count injects nothing but the pass still
// smooths.
type Schedule struct {
	Counts       [ScheduleLen]int
	Mode         ScheduleMode
	TargetPoints float64 // totalTime / timeStep
	Waypoints    int     // number of input points
	FinalPoints  int     // points after all passes
	Feasible     bool    // a candidate satisfied FinalPoints <= TargetPoints
}

// Err returns ErrNoFeasibleSchedule (wrapped) for an infeasible schedule
// and nil otherwise.
func (s Schedule) Err() error {
	if s.Feasible {
		return nil
	}
	return fmt.Errorf("%w: %d waypoints cannot be densified to at most %g points",
		ErrNoFeasibleSchedule, s.Waypoints, s.TargetPoints)
}

// String formats the schedule for logs.
func (s Schedule) String() string {
	return fmt.Sprintf("%s %v: %d -> %d points (target %g)",
		s.Mode, s.Counts, s.Waypoints, s.FinalPoints, s.TargetPoints)
}

// PointsAfter returns the point count of an n-point path after injecting
// each count in turn: n' = c*(n-1) + n per pass.
func PointsAfter(n int, counts ...int) int {
	for _, c := range counts {
		n = c*(n-1) + n
	}
	return n
}

// compound is PointsAfter in float64, matching the budget comparison.
func compound(n, c float64) float64 {
	return c*(n-1) + n
}

// PlanSchedule chooses injection counts for numWaypoints points so that the
// final point count fits totalTime/timeStep.
//
// Below 100 target points it searches first ∈ [4,6], second ∈ [1,8] and keeps
// the pair with the largest total not exceeding the target; the first pair
// found wins ties. Otherwise it searches first ∈ [1,5], second ∈ [1,8],
// third ∈ [1,7] and keeps the LAST feasible triple in iteration order, which
// is not necessarily the largest total. Existing trajectories depend on that
// exact choice, see PlanScheduleMaximal for the maximizing variant.
//
// If nothing fits, all counts are zero and Feasible is false.
//
// Big O: Constant Time
func PlanSchedule(numWaypoints int, totalTime, timeStep float64) Schedule {
	target := totalTime / timeStep
	n := float64(numWaypoints)

	s := Schedule{
		TargetPoints: target,
		Waypoints:    numWaypoints,
	}

	if target < threeStageThreshold {
		s.Mode = ModeTwoStage
		best := 0.0
		for i := twoStageFirstMin; i <= twoStageFirstMax; i++ {
			for j := twoStageSecondMin; j <= twoStageSecondMax; j++ {
				pointsFirst := compound(n, float64(i))
				pointsTotal := compound(pointsFirst, float64(j))

				if pointsTotal <= target && pointsTotal > best {
					s.Counts = [ScheduleLen]int{i, j, 0}
					s.Feasible = true
					best = pointsTotal
				}
			}
		}
	} else {
		s.Mode = ModeThreeStage
		for i := threeStageFirstMin; i <= threeStageFirstMax; i++ {
			for j := threeStageSecondMin; j <= threeStageSecondMax; j++ {
				for k := threeStageThirdMin; k <= threeStageThirdMax; k++ {
					pointsFirst := compound(n, float64(i))
					pointsSecond := compound(pointsFirst, float64(j))
					pointsTotal := compound(pointsSecond, float64(k))

					// Last feasible candidate wins.
					if pointsTotal <= target {
						s.Counts = [ScheduleLen]int{i, j, k}
						s.Feasible = true
					}
				}
			}
		}
	}

	s.FinalPoints = PointsAfter(numWaypoints, s.Counts[:]...)
	traceSchedule(s)

	return s
}

// PlanScheduleMaximal is PlanSchedule with a maximizing three-stage search:
// it keeps the triple with the largest total not exceeding the target, the
// first one found on ties. The two-stage branch is identical to PlanSchedule.
func PlanScheduleMaximal(numWaypoints int, totalTime, timeStep float64) Schedule {
	target := totalTime / timeStep
	if target < threeStageThreshold {
		return PlanSchedule(numWaypoints, totalTime, timeStep)
	}

	n := float64(numWaypoints)
	s := Schedule{
		Mode:         ModeThreeStage,
		TargetPoints: target,
		Waypoints:    numWaypoints,
	}

	best := 0.0
	for i := threeStageFirstMin; i <= threeStageFirstMax; i++ {
		for j := threeStageSecondMin; j <= threeStageSecondMax; j++ {
			for k := threeStageThirdMin; k <= threeStageThirdMax; k++ {
				pointsTotal := compound(compound(compound(n, float64(i)), float64(j)), float64(k))
				if pointsTotal <= target && pointsTotal > best {
					s.Counts = [ScheduleLen]int{i, j, k}
					s.Feasible = true
					best = pointsTotal
				}
			}
		}
	}

	s.FinalPoints = PointsAfter(numWaypoints, s.Counts[:]...)
	traceSchedule(s)

	return s
}

func traceSchedule(s Schedule) {
	if !s.Feasible {
		tracer().Infof("no feasible schedule for %d waypoints within %g points, injecting nothing",
			s.Waypoints, s.TargetPoints)
		return
	}
	if math.IsInf(s.TargetPoints, 0) || math.IsNaN(s.TargetPoints) {
		return
	}
	tracer().Infof("schedule %s", s)
}
