package InputParameters

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/notargets/gobem/types"
	"github.com/notargets/gobem/utils"
)

// Parameters obtained from the YAML input file
type InputParametersBEM struct {
	Title          string    `json:"Title"`
	Curve          string    `json:"Curve"`         // ellipse or star
	A              float64   `json:"A"`             // Ellipse semi axis along x, star curve mean radius
	B              float64   `json:"B"`             // Ellipse semi axis along y
	StarDelta      float64   `json:"StarDelta"`     // Star curve radial modulation
	StarLobes      int       `json:"StarLobes"`     // Star curve lobe count
	NBoundary      int       `json:"NBoundary"`     // M, boundary sample points
	NGrid          int       `json:"NGrid"`         // N, grid nodes along each axis
	GridHalfWidth  float64   `json:"GridHalfWidth"` // L, the grid covers [-L, L]^2
	Oracle         string    `json:"Oracle"`        // polynomial, exponential, linear, source
	HarmonicOrder  int       `json:"HarmonicOrder"` // n in r^n cos(n theta)
	SourceX        float64   `json:"SourceX"`       // Source location, must lie outside the boundary
	SourceY        float64   `json:"SourceY"`
	LinearCoeffs   []float64 `json:"LinearCoeffs"`   // a, b, c in a x + b y + c
	Epsilon        float64   `json:"Epsilon"`        // Kernel regularization distance
	Orientation    string    `json:"Orientation"`    // signedarea or radial
	ParallelDegree int       `json:"ParallelDegree"` // 0 uses every CPU
}

func NewDefaultInputParametersBEM() *InputParametersBEM {
	return &InputParametersBEM{
		Title:         "Ellipse, harmonic polynomial r^3 cos(3 theta)",
		Curve:         "ellipse",
		A:             3,
		B:             2,
		StarLobes:     5,
		NBoundary:     50,
		NGrid:         100,
		GridHalfWidth: 5,
		Oracle:        "polynomial",
		HarmonicOrder: 3,
		SourceX:       10,
		SourceY:       10,
		LinearCoeffs:  []float64{1, 1, 0},
		Epsilon:       1.e-8,
		Orientation:   "signedarea",
	}
}

// Parse overlays the YAML input onto the receiver, fields absent from data keep
// their current values
func (ip *InputParametersBEM) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

/*
Validate checks every parameter and returns all violations together, each one
wrapping utils.ErrInvalidConfiguration.
*/
func (ip *InputParametersBEM) Validate() (err error) {
	bad := func(format string, args ...interface{}) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format,
			append([]interface{}{utils.ErrInvalidConfiguration}, args...)...))
	}
	ct, cErr := types.NewCurveType(ip.Curve)
	err = multierr.Append(err, cErr)
	if ip.A <= 0 {
		bad("A must be positive, have %g", ip.A)
	}
	switch ct {
	case types.CURVE_Ellipse:
		if ip.B <= 0 {
			bad("B must be positive, have %g", ip.B)
		}
	case types.CURVE_Star:
		if ip.StarDelta < 0 || ip.StarDelta >= 1 {
			bad("StarDelta must be in [0,1), have %g", ip.StarDelta)
		}
		if ip.StarLobes < 0 {
			bad("StarLobes must not be negative, have %d", ip.StarLobes)
		}
	}
	if ip.NBoundary < 3 {
		bad("NBoundary must be at least 3, have %d", ip.NBoundary)
	}
	if ip.NGrid < 1 {
		bad("NGrid must be at least 1, have %d", ip.NGrid)
	}
	if ip.GridHalfWidth <= 0 {
		bad("GridHalfWidth must be positive, have %g", ip.GridHalfWidth)
	}
	if ip.Epsilon <= 0 {
		bad("Epsilon must be positive, have %g", ip.Epsilon)
	}
	if ip.ParallelDegree < 0 {
		bad("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	}
	ot, oErr := types.NewOracleType(ip.Oracle)
	err = multierr.Append(err, oErr)
	if oErr == nil {
		switch ot {
		case types.ORACLE_HarmonicPolynomial:
			if ip.HarmonicOrder < 0 {
				bad("HarmonicOrder must not be negative, have %d", ip.HarmonicOrder)
			}
		case types.ORACLE_Linear:
			if len(ip.LinearCoeffs) != 3 {
				bad("LinearCoeffs needs 3 entries, have %d", len(ip.LinearCoeffs))
			}
		}
	}
	_, rErr := types.NewOrientationType(ip.Orientation)
	err = multierr.Append(err, rErr)
	return
}

// Viper keys, shared with the command line flags
const (
	KeyNBoundary     = "nBoundary"
	KeyNGrid         = "nGrid"
	KeyGridHalfWidth = "gridHalfWidth"
	KeyA             = "a"
	KeyB             = "b"
	KeyHarmonicOrder = "harmonicOrder"
	KeyEpsilon       = "epsilon"
	KeyOracle        = "oracle"
	KeyOrientation   = "orientation"
	KeyCurve         = "curve"
	KeyParallel      = "parallelDegree"
	KeyStarDelta     = "starDelta"
	KeyStarLobes     = "starLobes"
	KeySourceX       = "sourceX"
	KeySourceY       = "sourceY"
	KeyLinearCoeffs  = "linearCoeffs"
)

// ApplyOverrides replaces fields with any value set in v, whether from a flag,
// the environment or a config file
func (ip *InputParametersBEM) ApplyOverrides(v *viper.Viper) (err error) {
	if v == nil {
		return
	}
	if v.IsSet(KeyNBoundary) {
		ip.NBoundary = v.GetInt(KeyNBoundary)
	}
	if v.IsSet(KeyNGrid) {
		ip.NGrid = v.GetInt(KeyNGrid)
	}
	if v.IsSet(KeyGridHalfWidth) {
		ip.GridHalfWidth = v.GetFloat64(KeyGridHalfWidth)
	}
	if v.IsSet(KeyA) {
		ip.A = v.GetFloat64(KeyA)
	}
	if v.IsSet(KeyB) {
		ip.B = v.GetFloat64(KeyB)
	}
	if v.IsSet(KeyHarmonicOrder) {
		ip.HarmonicOrder = v.GetInt(KeyHarmonicOrder)
	}
	if v.IsSet(KeyEpsilon) {
		ip.Epsilon = v.GetFloat64(KeyEpsilon)
	}
	if v.IsSet(KeyOracle) {
		ip.Oracle = v.GetString(KeyOracle)
	}
	if v.IsSet(KeyOrientation) {
		ip.Orientation = v.GetString(KeyOrientation)
	}
	if v.IsSet(KeyCurve) {
		ip.Curve = v.GetString(KeyCurve)
	}
	if v.IsSet(KeyParallel) {
		ip.ParallelDegree = v.GetInt(KeyParallel)
	}
	if v.IsSet(KeyStarDelta) {
		ip.StarDelta = v.GetFloat64(KeyStarDelta)
	}
	if v.IsSet(KeyStarLobes) {
		ip.StarLobes = v.GetInt(KeyStarLobes)
	}
	if v.IsSet(KeySourceX) {
		ip.SourceX = v.GetFloat64(KeySourceX)
	}
	if v.IsSet(KeySourceY) {
		ip.SourceY = v.GetFloat64(KeySourceY)
	}
	if v.IsSet(KeyLinearCoeffs) {
		if ip.LinearCoeffs, err = parseFloatList(v.GetStringSlice(KeyLinearCoeffs)); err != nil {
			return fmt.Errorf("%w: %s: %v", utils.ErrInvalidConfiguration, KeyLinearCoeffs, err)
		}
	}
	return
}

// parseFloatList accepts comma or space separated values, as they arrive from
// a flag list, the environment ("1,2,0") or a config file
func parseFloatList(fields []string) (vals []float64, err error) {
	splitter := func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }
	for _, field := range fields {
		for _, tok := range strings.FieldsFunc(field, splitter) {
			var f float64
			if f, err = strconv.ParseFloat(tok, 64); err != nil {
				return nil, err
			}
			vals = append(vals, f)
		}
	}
	return
}

func (ip *InputParametersBEM) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t\t= Curve\n", ip.Curve)
	fmt.Fprintf(w, "%8.5f\t\t= A\n", ip.A)
	fmt.Fprintf(w, "%8.5f\t\t= B\n", ip.B)
	if ct, _ := types.NewCurveType(ip.Curve); ct == types.CURVE_Star {
		fmt.Fprintf(w, "%8.5f\t\t= Star Delta\n", ip.StarDelta)
		fmt.Fprintf(w, "[%d]\t\t\t\t= Star Lobes\n", ip.StarLobes)
	}
	fmt.Fprintf(w, "[%d]\t\t\t\t= Boundary Points\n", ip.NBoundary)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Grid Points Per Axis\n", ip.NGrid)
	fmt.Fprintf(w, "%8.5f\t\t= Grid Half Width\n", ip.GridHalfWidth)
	fmt.Fprintf(w, "[%s]\t\t= Oracle\n", ip.Oracle)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Harmonic Order\n", ip.HarmonicOrder)
	fmt.Fprintf(w, "%8.2e\t\t= Epsilon\n", ip.Epsilon)
	fmt.Fprintf(w, "[%s]\t\t= Orientation\n", ip.Orientation)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
