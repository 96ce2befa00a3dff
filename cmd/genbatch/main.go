package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/kestrel-geo/overlay2d/fixture"
	"github.com/kestrel-geo/overlay2d/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "genbatch",
		Usage:     "Generates random or regular integer contour/polyline batches and outputs results to stdout as JSON",
		UsageText: "genbatch --mode <polygons|segments|grid|circle> [flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "mode",
				Usage:    "polygons (random contours), segments (random two-point polylines), grid (square lattice plus cut lines), or circle (one Bresenham-tessellated contour)",
				Value:    "polygons",
				OnlyOnce: true,
				Validator: func(m string) error {
					switch m {
					case "polygons", "segments", "grid", "circle":
						return nil
					default:
						return fmt.Errorf("mode must be one of polygons, segments, grid, circle")
					}
				},
			},
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of contours or segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "sides",
				Usage:    "Vertices per random polygon (mode=polygons)",
				Value:    6,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    1000,
			},
			&cli.IntFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    1000,
			},
			&cli.IntFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "pitch",
				Usage:    "Spacing between grid lattice lines (mode=grid)",
				Value:    10,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "radius",
				Usage:    "Circle radius (mode=circle)",
				Value:    10,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "center-x",
				Usage:    "Center/origin X coordinate (mode=grid,circle)",
				Value:    0,
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "center-y",
				Usage:    "Center/origin Y coordinate (mode=grid,circle)",
				Value:    0,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:     "clip",
				Usage:    "Also generate an independent second batch as the clip layer (mode=polygons)",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// output is the JSON envelope printed to stdout: subject/clip contour layers plus a lines
// layer of open polylines, matching the three input roles the kernel's root package accepts
// (subject contours, clip contours, and string-mode clip lines).
type output struct {
	Subject [][]point.Point[int32] `json:"subject,omitempty"`
	Clip    [][]point.Point[int32] `json:"clip,omitempty"`
	Lines   [][]point.Point[int32] `json:"lines,omitempty"`
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := int32(cmd.Int("minx"))
	maxx := int32(cmd.Int("maxx"))
	miny := int32(cmd.Int("miny"))
	maxy := int32(cmd.Int("maxy"))
	n := int(cmd.Int("number"))

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	bounds := fixture.Bounds{MinX: minx, MaxX: maxx, MinY: miny, MaxY: maxy}

	var out output
	switch cmd.String("mode") {
	case "polygons":
		sides := int(cmd.Int("sides"))
		out.Subject = fixture.RandomBatch(n, sides, bounds)
		if cmd.Bool("clip") {
			out.Clip = fixture.RandomBatch(n, sides, bounds)
		}
	case "segments":
		out.Lines = toPolylines(fixture.RandomSegments(n, bounds))
	case "grid":
		origin := point.New(int32(cmd.Int("center-x")), int32(cmd.Int("center-y")))
		pitch := int32(cmd.Int("pitch"))
		count := int32(n)
		out.Subject = fixture.Grid(origin, count, pitch)
		out.Lines = fixture.GridLines(origin, count, pitch)
	case "circle":
		center := point.New(int32(cmd.Int("center-x")), int32(cmd.Int("center-y")))
		out.Subject = [][]point.Point[int32]{fixture.Circle(center, int32(cmd.Int("radius")))}
	}

	b, err := json.Marshal(out)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

func toPolylines(segs [][2]point.Point[int32]) [][]point.Point[int32] {
	lines := make([][]point.Point[int32], len(segs))
	for i, s := range segs {
		lines[i] = []point.Point[int32]{s[0], s[1]}
	}
	return lines
}
