package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gobem/InputParameters"
	"github.com/notargets/gobem/utils"
)

func TestProcessInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Case
A: 2.5
B: 1.5
NBoundary: 64
NGrid: 21
GridHalfWidth: 3
Oracle: Linear # Can be polynomial, exponential, linear or source
LinearCoeffs: [0.5, -2, 1]
`)
	icFile := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(icFile, fileInput, 0644))
	{
		var buf bytes.Buffer
		ip, err := processInput(icFile, viper.New(), &buf)
		require.NoError(t, err)
		assert.Equal(t, 2.5, ip.A)
		assert.Equal(t, 64, ip.NBoundary)
		assert.Equal(t, []float64{0.5, -2, 1}, ip.LinearCoeffs)
		assert.Equal(t, 3, ip.HarmonicOrder)
		assert.Contains(t, buf.String(), "= Boundary Points")
	}
	{ // Flags, environment and config values win over the file
		v := viper.New()
		v.Set(InputParameters.KeyNBoundary, 128)
		v.Set(InputParameters.KeyLinearCoeffs, "1,2,3")
		ip, err := processInput(icFile, v, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, 128, ip.NBoundary)
		assert.Equal(t, []float64{1, 2, 3}, ip.LinearCoeffs)
		v.Set(InputParameters.KeyLinearCoeffs, "1,2")
		_, err = processInput(icFile, v, &bytes.Buffer{})
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
		v.Set(InputParameters.KeyLinearCoeffs, "1,2,3")
		v.Set(InputParameters.KeyNBoundary, 2)
		_, err = processInput(icFile, v, &bytes.Buffer{})
		assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
	}
	_, err = processInput(filepath.Join(t.TempDir(), "missing.yaml"), nil, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun2D(t *testing.T) {
	ip := InputParameters.NewDefaultInputParametersBEM()
	ip.NBoundary = 100
	ip.NGrid = 25
	sol, err := Run2D(&Model2D{}, ip, nil)
	require.NoError(t, err)
	assert.Equal(t, 25*25, len(sol.Field))
	assert.True(t, sol.InteriorRMSError < 0.05)

	ip.Epsilon = 0
	_, err = Run2D(&Model2D{}, ip, nil)
	assert.True(t, errors.Is(err, utils.ErrInvalidConfiguration))
}

func TestStudyCommands(t *testing.T) {
	var (
		dir     = t.TempDir()
		csvFile = filepath.Join(dir, "study.csv")
		buf     bytes.Buffer
	)
	rootCmd.SetOut(&buf)
	defer rootCmd.SetOut(nil)
	rootCmd.SetArgs([]string{"convergence", "--levels", "50,100", "--nGrid", "20", "-o", csvFile})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "RMS Order")
	_, err := os.Stat(csvFile)
	require.NoError(t, err)

	buf.Reset()
	rootCmd.SetArgs([]string{"order", "-f", csvFile})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Input file: "+csvFile)
	assert.Contains(t, buf.String(), "NGrid = 20")

	// Flag values persist between executions
	require.NoError(t, OrderCmd.Flags().Set("csvFile", ""))
	rootCmd.SetArgs([]string{"order"})
	assert.Error(t, rootCmd.Execute())
}
