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
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/model_problems/Laplace2D"
)

type Model2D struct {
	ICFile      string
	Graph       bool
	ShowNormals bool
	PlotExact   bool
	Hold        time.Duration
}

const exampleFile = `
########################################
Title: "Ellipse, r^3 cos(3 theta)"
Curve: ellipse      # or star, using A, StarDelta, StarLobes
A: 3
B: 2
NBoundary: 50       # M, boundary sample points
NGrid: 100          # N, grid points along each axis
GridHalfWidth: 5    # L, grid covers [-L,L]^2
Oracle: polynomial  # or exponential, linear, source
HarmonicOrder: 3
Epsilon: 1.e-8
Orientation: signedarea # or radial
########################################
`

// TwoDCmd represents the 2D command
var TwoDCmd = &cobra.Command{
	Use:   "2D",
	Short: "Reconstruct a harmonic field inside a closed curve from boundary data",
	Long: `
Samples the boundary curve, manufactures boundary values and normal derivatives
from a known harmonic function, assembles the single and double layer kernel
matrices over an N x N grid and evaluates Green's representation formula.

gobem 2D -I input.yaml -g --hold 30s` + "\nExample input file:" + exampleFile,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		m2d := &Model2D{}
		if m2d.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			return
		}
		m2d.Graph, _ = cmd.Flags().GetBool("graph")
		m2d.ShowNormals, _ = cmd.Flags().GetBool("normals")
		m2d.PlotExact, _ = cmd.Flags().GetBool("exact")
		m2d.Hold, _ = cmd.Flags().GetDuration("hold")
		var ip *InputParameters.InputParametersBEM
		if ip, err = processInput(m2d.ICFile, viper.GetViper(), cmd.OutOrStdout()); err != nil {
			return
		}
		_, err = Run2D(m2d, ip, logger)
		return
	},
}

/*
processInput starts from the reference configuration, overlays the input file
when one is given, then any flag, environment or config file values.
*/
func processInput(ICFile string, v *viper.Viper, w io.Writer) (ip *InputParameters.InputParametersBEM, err error) {
	ip = InputParameters.NewDefaultInputParametersBEM()
	if len(ICFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(ICFile); err != nil {
			return nil, err
		}
		if err = ip.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", ICFile, err)
		}
	}
	if err = ip.ApplyOverrides(v); err != nil {
		return nil, err
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	ip.Print(w)
	return
}

func init() {
	rootCmd.AddCommand(TwoDCmd)
	TwoDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- NBoundary\n\t- NGrid\n\t- Oracle")
	TwoDCmd.Flags().BoolP("graph", "g", false, "display the reconstructed field")
	TwoDCmd.Flags().BoolP("normals", "n", false, "draw outward normals and sample points on the boundary")
	TwoDCmd.Flags().Bool("exact", false, "display the oracle field instead of the reconstruction")
	TwoDCmd.Flags().Duration("hold", 0, "how long the graph stays up, 0 holds until interrupted")
}

func Run2D(m2d *Model2D, ip *InputParameters.InputParametersBEM, logger *zap.Logger) (sol *Laplace2D.Solution, err error) {
	var (
		c *Laplace2D.Laplace2D
	)
	if c, err = Laplace2D.NewLaplace2D(ip, logger); err != nil {
		return
	}
	if sol, err = c.Solve(); err != nil {
		return
	}
	c.Plot(sol, &Laplace2D.PlotMeta{
		Plot:        m2d.Graph,
		ShowNormals: m2d.ShowNormals,
		Exact:       m2d.PlotExact,
		Hold:        m2d.Hold,
	})
	return
}
