/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package analyze

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geotoolkit/geo"
	"github.com/hypermodeinc/geotoolkit/x"
)

// Analyze is the sub-command invoked when running "geotool analyze".
var Analyze x.SubCommand

var opt struct {
	geo     string
	feature bool
}

func init() {
	Analyze.Cmd = &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a GeoJSON geometry file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
		Annotations: map[string]string{"group": "tool"},
	}
	Analyze.EnvPrefix = "GEOTOOL_ANALYZE"

	flag := Analyze.Cmd.Flags()
	flag.StringVar(&opt.geo, "geo", "", "Location of GeoJSON file to analyze")
	flag.BoolVar(&opt.feature, "feature", false,
		"Emit the envelope and analysis results as a GeoJSON feature")
	x.Check(Analyze.Cmd.MarkFlagRequired("geo"))
}

func run() error {
	data, err := os.ReadFile(opt.geo)
	if err != nil {
		return errors.Wrapf(err, "cannot read %s", opt.geo)
	}
	g, err := geo.FromGeoJSON(data)
	if err != nil {
		return err
	}

	points := geo.PointCount(g)
	env := geo.EnvelopeOf(g)
	glog.V(2).Infof("Loaded %s geometry with %d points from %s",
		geo.GeoJSONType(g), points, opt.geo)

	if opt.feature {
		return printFeature(g, env, points)
	}

	fmt.Printf("type: %s\n", geo.GeoJSONType(g))
	fmt.Printf("points: %d\n", points)
	if env.IsEmpty() {
		fmt.Println("envelope: empty")
		return nil
	}
	fmt.Printf("envelope: %g %g %g %g\n", env.XMin, env.YMin, env.XMax, env.YMax)
	fmt.Printf("rectangle: %v\n", geo.IsPointOrRectangle(g, env))
	return nil
}

func printFeature(g geom.T, env geo.Envelope, points int) error {
	if env.IsEmpty() {
		return errors.Wrap(geo.ErrInvalidInput, "empty geometry has no envelope")
	}
	ring := [][]float64{
		{env.XMin, env.YMin},
		{env.XMax, env.YMin},
		{env.XMax, env.YMax},
		{env.XMin, env.YMax},
		{env.XMin, env.YMin},
	}
	f := geojson.NewPolygonFeature([][][]float64{ring})
	f.SetProperty("type", geo.GeoJSONType(g))
	f.SetProperty("pointCount", points)
	f.SetProperty("rectangle", geo.IsPointOrRectangle(g, env))
	out, err := f.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "cannot encode feature")
	}
	fmt.Println(string(out))
	return nil
}
