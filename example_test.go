package planner_test

import (
	"fmt"
	"log"

	planner "github.com/tphakala/go-path-planner"
)

func ExampleNew() {
	waypoints := [][]float64{{0, 0}, {10, 10}}

	p, err := planner.New(waypoints, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Calculate(5, planner.Step10Hz); err != nil {
		log.Fatal(err)
	}

	smooth := p.SmoothPath()
	fmt.Println(p.Schedule(), len(smooth))
	fmt.Println(smooth[0], smooth[len(smooth)-1])
	// Output:
	// [6 6 0] 50
	// [0 0] [10 10]
}

func ExampleInjectionCounts() {
	counts := planner.InjectionCounts(13, 15, 0.1)
	fmt.Println(counts, planner.PointCount(13, counts[:]...))
	// Output: [2 1 1] 145
}

func ExampleFormat() {
	fmt.Printf("%q\n", planner.Format([][]float64{{1, 2.5}, {3, -4}}))
	// Output: "1\t2.5\t\n3\t-4\t\n"
}

func ExampleSmoothWaypoints() {
	waypoints := [][]float64{{0, 0}, {10, 0}, {10, 10}}

	smooth, err := planner.SmoothWaypoints(waypoints, 5, planner.Step10Hz)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(smooth), smooth[0], smooth[len(smooth)-1])
	// Output: 49 [0 0] [10 10]
}
