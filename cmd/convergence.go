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
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/gobem/model_problems/Laplace2D"
)

// ConvergenceCmd runs one configuration over several boundary resolutions
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Error norms of the reconstruction over a sequence of boundary resolutions",
	Long: `
Solves the configuration once for each boundary resolution M in --levels and
writes the interior RMS and max errors as CSV, ready for the order command.

gobem convergence -I input.yaml --levels 25,50,100,200 -o study.csv`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			ICFile, outFile string
			levels          []int
			concurrent      int
			w               = cmd.OutOrStdout()
		)
		ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		outFile, _ = cmd.Flags().GetString("output")
		levels, _ = cmd.Flags().GetIntSlice("levels")
		concurrent, _ = cmd.Flags().GetInt("concurrent")
		ip, err := processInput(ICFile, viper.GetViper(), w)
		if err != nil {
			return
		}
		cs, err := Laplace2D.RunConvergenceStudy(context.Background(), ip, levels, concurrent, logger)
		if err != nil {
			return
		}
		printStudy(w, cs)
		if len(outFile) == 0 {
			return
		}
		var f *os.File
		if f, err = os.Create(outFile); err != nil {
			return
		}
		defer f.Close()
		if err = cs.WriteCSV(f, true); err != nil {
			return
		}
		logger.Info("convergence study written", zap.String("file", outFile), zap.Int("levels", cs.Len()))
		return
	},
}

// OrderCmd reports observed convergence order from a study file
var OrderCmd = &cobra.Command{
	Use:   "order",
	Short: "Observed order of convergence from a study CSV file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		csvFile, _ := cmd.Flags().GetString("csvFile")
		if len(csvFile) == 0 {
			return fmt.Errorf("must supply a study file (-f, --csvFile)")
		}
		var (
			f       *os.File
			studies map[string]*Laplace2D.ConvergenceStudy
			w       = cmd.OutOrStdout()
		)
		if f, err = os.Open(csvFile); err != nil {
			return
		}
		defer f.Close()
		if studies, err = Laplace2D.ReadStudies(f); err != nil {
			return
		}
		fmt.Fprintf(w, "Input file: %v\n", csvFile)
		keys := make([]string, 0, len(studies))
		for k := range studies {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			printStudy(w, studies[key])
		}
		return
	},
}

func printStudy(w io.Writer, cs *Laplace2D.ConvergenceStudy) {
	rmsOrder, maxOrder := cs.Orders()
	fmt.Fprintf(w, "Title = %s, NGrid = %d\n", cs.Title, cs.NGrid)
	fmt.Fprintf(w, "%6s %14s %14s %14s %10s %10s\n", "M", "RMS", "MAX", "Exterior MAX", "RMS Order", "MAX Order")
	for i := range cs.NumPTS {
		ro, mo := math.NaN(), math.NaN()
		if i > 0 {
			ro, mo = rmsOrder[i-1], maxOrder[i-1]
		}
		fmt.Fprintf(w, "%6d %14.6e %14.6e %14.6e %10.3f %10.3f\n",
			cs.NumPTS[i], cs.RMS[i], cs.MAX[i], cs.ExteriorMAX[i], ro, mo)
	}
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters")
	ConvergenceCmd.Flags().IntSlice("levels", []int{25, 50, 100, 200}, "boundary resolutions M to solve")
	ConvergenceCmd.Flags().StringP("output", "o", "", "CSV file for the study, printed only when empty")
	ConvergenceCmd.Flags().Int("concurrent", 2, "resolutions solved at the same time")

	rootCmd.AddCommand(OrderCmd)
	OrderCmd.Flags().StringP("csvFile", "f", "", "file containing entries of a convergence study")
}
