package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tweenkit/tween"
)

var curveSteps int

var curveCmd = &cobra.Command{
	Use:   "curve <x,y> <x,y> <x,y> <x,y>",
	Short: "Sample a cubic Bezier curve",
	Long: `Sample a cubic Bezier curve given its start point, two control
points, and end point, printing the point and tangent heading at each
parameter step.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		if curveSteps < 1 {
			return fmt.Errorf("steps must be at least 1")
		}
		pts := make([]tween.Point, 4)
		for i, arg := range args {
			p, err := parsePoint(arg)
			if err != nil {
				return fmt.Errorf("parsing point %q: %w", arg, err)
			}
			pts[i] = p
		}

		c := tween.NewCubicBez(pts[0], pts[1], pts[2], pts[3])
		bbox := c.BoundingBox()
		tween.Logger().Debug("sampling curve",
			"steps", curveSteps,
			"width", bbox.Width(), "height", bbox.Height())

		cmd.Printf("%8s %12s %12s %10s\n", "t", "x", "y", "heading°")
		for i := 0; i <= curveSteps; i++ {
			t := float64(i) / float64(curveSteps)
			p := c.Eval(t)
			cmd.Printf("%8.3f %12.4f %12.4f %10.2f\n", t, p.X, p.Y, tween.Degrees(c.Heading(t)))
		}
		return nil
	},
}

func init() {
	curveCmd.Flags().IntVar(&curveSteps, "steps", 10, "number of parameter steps")
}

// parsePoint parses an "x,y" pair into a Point.
func parsePoint(s string) (tween.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return tween.Point{}, fmt.Errorf("want x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return tween.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return tween.Point{}, err
	}
	return tween.Pt(x, y), nil
}
