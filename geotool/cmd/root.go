/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package cmd

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hypermodeinc/geotoolkit/geotool/cmd/analyze"
	"github.com/hypermodeinc/geotoolkit/geotool/cmd/tokens"
	"github.com/hypermodeinc/geotoolkit/x"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "geotool",
	Short: "Geotool: geometry analysis for GeoJSON data",
	Long: `
Geotool analyzes GeoJSON geometries the way the engine's geospatial type
support does: point counts, envelopes, rectangle classification and the S2
cell tokens used by the geospatial index.
`,
	Args: cobra.NoArgs,
}

var rootConf = viper.New()

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	goflag.Parse()
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().String("config", "",
		"Configuration file. Takes precedence over default values, but is "+
			"overridden to values set with environment variables and flags.")
	x.Check(rootConf.BindPFlags(RootCmd.PersistentFlags()))

	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	// Always set stderrthreshold=0 so glog output is visible.
	x.Check(flag.Set("stderrthreshold", "0"))

	subcommands := []*x.SubCommand{&analyze.Analyze, &tokens.Tokens}
	for _, sc := range subcommands {
		RootCmd.AddCommand(sc.Cmd)
		sc.Conf = viper.New()
		x.Check(sc.Conf.BindPFlags(sc.Cmd.Flags()))
		x.Check(sc.Conf.BindPFlags(RootCmd.PersistentFlags()))
		sc.Conf.AutomaticEnv()
		sc.Conf.SetEnvPrefix(sc.EnvPrefix)
	}
	cobra.OnInitialize(func() {
		cfg := rootConf.GetString("config")
		if cfg == "" {
			return
		}
		for _, sc := range subcommands {
			sc.Conf.SetConfigFile(cfg)
			x.Check(x.Wrapf(sc.Conf.ReadInConfig(), "reading config"))
		}
	})
}
