package types

import (
	"fmt"
	"strings"

	"github.com/notargets/gobem/utils"
)

type CurveType uint8

const (
	CURVE_Ellipse CurveType = iota
	CURVE_Star
)

var (
	CurveNames = map[string]CurveType{
		"ellipse": CURVE_Ellipse,
		"star":    CURVE_Star,
	}
	CurvePrintNames = []string{"Ellipse", "Star"}
)

func (ct CurveType) Print() (txt string) {
	txt = CurvePrintNames[ct]
	return
}

type OracleType uint8

const (
	ORACLE_HarmonicPolynomial OracleType = iota
	ORACLE_Exponential
	ORACLE_Linear
	ORACLE_Source
)

var (
	OracleNames = map[string]OracleType{
		"polynomial":  ORACLE_HarmonicPolynomial,
		"harmonic":    ORACLE_HarmonicPolynomial,
		"exponential": ORACLE_Exponential,
		"exp":         ORACLE_Exponential,
		"linear":      ORACLE_Linear,
		"source":      ORACLE_Source,
	}
	OraclePrintNames = []string{"Harmonic Polynomial r^n cos(n theta)", "Exponential e^x cos(y)",
		"Linear", "Exterior Point Source"}
)

func (ot OracleType) Print() (txt string) {
	txt = OraclePrintNames[ot]
	return
}

type OrientationType uint8

const (
	ORIENT_SignedArea OrientationType = iota
	ORIENT_Radial
)

var (
	OrientationNames = map[string]OrientationType{
		"signedarea": ORIENT_SignedArea,
		"area":       ORIENT_SignedArea,
		"radial":     ORIENT_Radial,
	}
	OrientationPrintNames = []string{"Signed Area", "Radial"}
)

func (ot OrientationType) Print() (txt string) {
	txt = OrientationPrintNames[ot]
	return
}

// An empty label selects the first entry of each type
func NewCurveType(label string) (ct CurveType, err error) {
	if len(label) == 0 {
		return CURVE_Ellipse, nil
	}
	var ok bool
	if ct, ok = CurveNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("%w: unable to use curve named %s", utils.ErrInvalidConfiguration, label)
	}
	return
}

func NewOracleType(label string) (ot OracleType, err error) {
	if len(label) == 0 {
		return ORACLE_HarmonicPolynomial, nil
	}
	var ok bool
	if ot, ok = OracleNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("%w: unable to use oracle named %s", utils.ErrInvalidConfiguration, label)
	}
	return
}

func NewOrientationType(label string) (ot OrientationType, err error) {
	if len(label) == 0 {
		return ORIENT_SignedArea, nil
	}
	var ok bool
	label = strings.ReplaceAll(strings.ToLower(label), "_", "")
	if ot, ok = OrientationNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use orientation named %s", utils.ErrInvalidConfiguration, label)
	}
	return
}
