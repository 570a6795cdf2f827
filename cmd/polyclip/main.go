// Command polyclip computes a Boolean set operation between two JSON
// polygons and writes the result, also as JSON, to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/polyclip-go/martinez/polyclip"
)

// jsonPolygon is the on-the-wire shape of a polygon: a list of
// contours, each a list of [x, y] pairs.
type jsonPolygon struct {
	Contours [][][2]float64 `json:"contours"`
}

func (j jsonPolygon) toPolygon() polyclip.Polygon {
	contours := make([]polyclip.Contour, len(j.Contours))
	for i, c := range j.Contours {
		pts := make([]polyclip.Point, len(c))
		for k, xy := range c {
			pts[k] = polyclip.Point{X: xy[0], Y: xy[1]}
		}
		contours[i] = polyclip.NewContour(pts)
	}
	return polyclip.NewPolygon(contours...)
}

func fromPolygon(p polyclip.Polygon) jsonPolygon {
	out := jsonPolygon{Contours: make([][][2]float64, len(p.Contours))}
	for i, c := range p.Contours {
		pts := make([][2]float64, len(c.Points))
		for k, pt := range c.Points {
			pts[k] = [2]float64{pt.X, pt.Y}
		}
		out.Contours[i] = pts
	}
	return out
}

var operations = map[string]polyclip.Operation{
	"intersection": polyclip.Intersection,
	"union":        polyclip.Union,
	"difference":   polyclip.Difference,
	"xor":          polyclip.Xor,
}

func main() {
	cmd := &cli.Command{
		Name:      "polyclip",
		Usage:     "Computes a Boolean set operation between two polygons",
		UsageText: "polyclip --op <intersection|union|difference|xor> --subject <file> --clipping <file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "op",
				Usage:    "the operation to compute",
				Value:    "intersection",
				OnlyOnce: true,
				Validator: func(s string) error {
					if _, ok := operations[strings.ToLower(s)]; !ok {
						return fmt.Errorf("unknown operation %q", s)
					}
					return nil
				},
			},
			&cli.StringFlag{
				Name:     "subject",
				Usage:    "path to the subject polygon's JSON file",
				Required: true,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "clipping",
				Usage:    "path to the clipping polygon's JSON file",
				Required: true,
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:  "intersections",
				Usage: "also report every intersection point the sweep discovered",
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	subject, err := readPolygon(cmd.String("subject"))
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	clipping, err := readPolygon(cmd.String("clipping"))
	if err != nil {
		return fmt.Errorf("clipping: %w", err)
	}

	op := operations[strings.ToLower(cmd.String("op"))]
	clipper := polyclip.New(subject, clipping)

	if cmd.Bool("intersections") {
		result, points := clipper.ComputeWithIntersections(op)
		out := struct {
			Result        jsonPolygon  `json:"result"`
			Intersections [][2]float64 `json:"intersections"`
		}{Result: fromPolygon(result)}
		out.Intersections = make([][2]float64, len(points))
		for i, p := range points {
			out.Intersections[i] = [2]float64{p.X, p.Y}
		}
		return writeJSON(out)
	}

	return writeJSON(fromPolygon(clipper.Compute(op)))
}

func readPolygon(path string) (polyclip.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return polyclip.Polygon{}, err
	}
	defer f.Close()

	var jp jsonPolygon
	if err := json.NewDecoder(f).Decode(&jp); err != nil {
		return polyclip.Polygon{}, err
	}
	return jp.toPolygon(), nil
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
