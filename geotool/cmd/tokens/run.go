/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package tokens

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"

	"github.com/hypermodeinc/geotoolkit/geo"
	"github.com/hypermodeinc/geotoolkit/index"
	"github.com/hypermodeinc/geotoolkit/x"
)

// Tokens is the sub-command invoked when running "geotool tokens".
var Tokens x.SubCommand

var opt struct {
	geo  string
	near float64
}

func init() {
	Tokens.Cmd = &cobra.Command{
		Use:   "tokens",
		Short: "Print the S2 index tokens for a GeoJSON geometry",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := run(); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		},
		Annotations: map[string]string{"group": "tool"},
	}
	Tokens.EnvPrefix = "GEOTOOL_TOKENS"

	flag := Tokens.Cmd.Flags()
	flag.StringVar(&opt.geo, "geo", "", "Location of GeoJSON file to index")
	flag.Float64Var(&opt.near, "near", 0,
		"Generate query tokens for the cap of this radius in meters around a point")
	x.Check(Tokens.Cmd.MarkFlagRequired("geo"))
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

	var toks []string
	if opt.near > 0 {
		pt, ok := g.(*geom.Point)
		if !ok {
			return errors.Wrap(geo.ErrTypeMismatch, "--near requires a Point geometry")
		}
		toks, err = index.NearTokens(pt, opt.near)
	} else {
		toks, err = index.Tokens(g)
	}
	if err != nil {
		return err
	}

	glog.V(2).Infof("Generated %d tokens for %s", len(toks), opt.geo)
	for _, tok := range toks {
		fmt.Println(tok)
	}
	return nil
}
