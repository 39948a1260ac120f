/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/utils"
)

var (
	cfgFile     string
	verbose     bool
	profileMode string
	profiler    interface{ Stop() }
	logger      *zap.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gobem",
	Short: "Boundary integral reconstruction of harmonic fields in two dimensions",
	Long: `
Reconstructs a harmonic field inside a closed curve from boundary values and
normal derivatives alone, using Green's representation formula evaluated on a
square grid of sample points.

gobem 2D -I input.yaml -g`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if logger, err = config.Build(); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		switch profileMode {
		case "":
		case "cpu":
			profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		case "mem":
			profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		default:
			return fmt.Errorf("%w: unknown profile mode %s, use cpu or mem",
				utils.ErrInvalidConfiguration, profileMode)
		}
		logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("BLAS", utils.BLASImplementation))
		return
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if profiler != nil {
			profiler.Stop()
			profiler = nil
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gobem.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profileMode, "profile", "", "write a cpu or mem profile to the current directory")

	// Any of these override the input file, as do GOBEM_<KEY> environment variables
	pf := rootCmd.PersistentFlags()
	pf.Int(InputParameters.KeyNBoundary, 0, "number of boundary sample points M")
	pf.Int(InputParameters.KeyNGrid, 0, "number of grid points along each axis N")
	pf.Float64(InputParameters.KeyGridHalfWidth, 0, "grid half width L, the grid covers [-L,L]^2")
	pf.Float64(InputParameters.KeyA, 0, "ellipse semi axis along x, star curve mean radius")
	pf.Float64(InputParameters.KeyB, 0, "ellipse semi axis along y")
	pf.Int(InputParameters.KeyHarmonicOrder, 0, "order n of the harmonic polynomial r^n cos(n theta)")
	pf.Float64(InputParameters.KeyEpsilon, 0, "kernel regularization distance")
	pf.String(InputParameters.KeyOracle, "", "field oracle: polynomial, exponential, linear, source")
	pf.String(InputParameters.KeyOrientation, "", "normal orientation: signedarea, radial")
	pf.String(InputParameters.KeyCurve, "", "boundary curve: ellipse, star")
	pf.Int(InputParameters.KeyParallel, 0, "go routines used in assembly, 0 uses every CPU")
	pf.Float64(InputParameters.KeyStarDelta, 0, "star curve radial modulation")
	pf.Int(InputParameters.KeyStarLobes, 0, "star curve lobe count")
	pf.Float64(InputParameters.KeySourceX, 0, "source oracle location x, outside the boundary")
	pf.Float64(InputParameters.KeySourceY, 0, "source oracle location y, outside the boundary")
	pf.StringSlice(InputParameters.KeyLinearCoeffs, nil, "linear oracle coefficients a,b,c of a x + b y + c")
	for _, key := range []string{
		InputParameters.KeyNBoundary, InputParameters.KeyNGrid, InputParameters.KeyGridHalfWidth,
		InputParameters.KeyA, InputParameters.KeyB, InputParameters.KeyHarmonicOrder,
		InputParameters.KeyEpsilon, InputParameters.KeyOracle, InputParameters.KeyOrientation,
		InputParameters.KeyCurve, InputParameters.KeyParallel, InputParameters.KeyStarDelta,
		InputParameters.KeyStarLobes, InputParameters.KeySourceX, InputParameters.KeySourceY,
		InputParameters.KeyLinearCoeffs,
	} {
		if err := viper.BindPFlag(key, pf.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".gobem" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".gobem")
	}
	viper.SetEnvPrefix("GOBEM")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
