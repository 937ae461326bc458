// Command s2loop is a small inspection tool over the s2 package: build a
// regular loop and print its basic measurements, or validate a
// previously-encoded loop file.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/golang/geo/s1"

	"github.com/goedderz/s2geometry/s2"
	"github.com/goedderz/s2geometry/x"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "regular":
		runRegular(os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  s2loop regular <lat-deg> <lng-deg> <radius-deg> <n>")
	fmt.Fprintln(os.Stderr, "  s2loop validate <path>")
	os.Exit(2)
}

func runRegular(args []string) {
	if len(args) != 4 {
		usage()
	}
	lat, err1 := strconv.ParseFloat(args[0], 64)
	lng, err2 := strconv.ParseFloat(args[1], 64)
	radius, err3 := strconv.ParseFloat(args[2], 64)
	n, err4 := strconv.Atoi(args[3])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		usage()
	}

	center := s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng))
	loop := s2.RegularLoop(center, s1.Angle(radius*math.Pi/180), n)

	fmt.Printf("vertices:      %d\n", loop.NumVertices())
	fmt.Printf("area:          %v\n", loop.Area())
	fmt.Printf("turning angle: %v\n", loop.TurningAngle())
	fmt.Printf("normalized:    %v\n", loop.IsNormalized())
	fmt.Printf("valid:         %v\n", loop.IsValid())
}

func runValidate(args []string) {
	if len(args) != 1 {
		usage()
	}
	f, err := os.Open(args[0])
	if err != nil {
		x.LogErrorf("open %s: %v", args[0], err)
		os.Exit(1)
	}
	defer f.Close()

	loop, err := s2.DecodeLoop(f)
	if err != nil {
		x.LogErrorf("decode %s: %v", args[0], err)
		os.Exit(1)
	}

	if verr := loop.FindValidationError(); verr != nil {
		fmt.Printf("invalid: %v\n", verr)
		os.Exit(1)
	}
	fmt.Println("valid")
}
