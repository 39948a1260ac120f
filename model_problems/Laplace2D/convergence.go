package Laplace2D

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/notargets/gobem/InputParameters"
)

// ConvergenceStudy holds error norms of one configuration over a sequence of
// boundary resolutions, ordered by increasing M
type ConvergenceStudy struct {
	Title       string
	NGrid       int
	NumPTS      []int // Boundary sample count M
	RMS, MAX    []float64
	ExteriorMAX []float64
}

func NewConvergenceStudy(title string, NGrid int) *ConvergenceStudy {
	return &ConvergenceStudy{
		Title: title,
		NGrid: NGrid,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, rms, maxErr, extMax float64) {
	cs.NumPTS = append(cs.NumPTS, numPTS)
	cs.RMS = append(cs.RMS, rms)
	cs.MAX = append(cs.MAX, maxErr)
	cs.ExteriorMAX = append(cs.ExteriorMAX, extMax)
}

func (cs *ConvergenceStudy) Len() int { return len(cs.NumPTS) }

/*
Orders returns the observed convergence order between each consecutive pair of
resolutions

	p = log(e[i]/e[i+1]) / log(M[i+1]/M[i])

A pair with a zero error yields NaN.
*/
func (cs *ConvergenceStudy) Orders() (rmsOrder, maxOrder []float64) {
	order := func(e1, e2 float64, m1, m2 int) float64 {
		if e1 <= 0 || e2 <= 0 || m1 == m2 {
			return math.NaN()
		}
		return math.Log(e1/e2) / math.Log(float64(m2)/float64(m1))
	}
	for i := 0; i < cs.Len()-1; i++ {
		rmsOrder = append(rmsOrder, order(cs.RMS[i], cs.RMS[i+1], cs.NumPTS[i], cs.NumPTS[i+1]))
		maxOrder = append(maxOrder, order(cs.MAX[i], cs.MAX[i+1], cs.NumPTS[i], cs.NumPTS[i+1]))
	}
	return
}

/*
RunConvergenceStudy solves the configuration once per boundary resolution in
levels. At most ProcLimit resolutions run at once, each assembly using the
parallel degree from ip. The first failure stops resolutions not yet started.
*/
func RunConvergenceStudy(ctx context.Context, ip *InputParameters.InputParametersBEM, levels []int,
	ProcLimit int, logger *zap.Logger) (cs *ConvergenceStudy, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no boundary resolutions given")
	}
	var (
		sorted    = append([]int(nil), levels...)
		solutions = make([]*Solution, len(levels))
	)
	sort.Ints(sorted)
	// Validate every level before starting any work
	for _, M := range sorted {
		ipL := *ip
		ipL.NBoundary = M
		if err = ipL.Validate(); err != nil {
			return nil, err
		}
	}
	g, gctx := errgroup.WithContext(ctx)
	if ProcLimit > 0 {
		g.SetLimit(ProcLimit)
	}
	for i, M := range sorted {
		i, M := i, M
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ipL := *ip
			ipL.NBoundary = M
			start := time.Now()
			c, err := NewLaplace2D(&ipL, logger.With(zap.Int("M", M)))
			if err != nil {
				return err
			}
			if solutions[i], err = c.Solve(); err != nil {
				return fmt.Errorf("M = %d: %w", M, err)
			}
			logger.Debug("resolution complete", zap.Int("M", M), zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	cs = NewConvergenceStudy(ip.Title, ip.NGrid)
	for i, M := range sorted {
		sol := solutions[i]
		cs.Add(M, sol.InteriorRMSError, sol.InteriorMaxError, sol.ExteriorMaxMagnitude)
	}
	return
}

var studyHeader = []string{"Title", "M", "NGrid", "InteriorRMS", "InteriorMAX", "ExteriorMAX"}

func (cs *ConvergenceStudy) WriteCSV(w io.Writer, writeHeader bool) (err error) {
	cw := csv.NewWriter(w)
	if writeHeader {
		if err = cw.Write(studyHeader); err != nil {
			return
		}
	}
	for i := range cs.NumPTS {
		rec := []string{
			cs.Title,
			strconv.Itoa(cs.NumPTS[i]),
			strconv.Itoa(cs.NGrid),
			strconv.FormatFloat(cs.RMS[i], 'e', 8, 64),
			strconv.FormatFloat(cs.MAX[i], 'e', 8, 64),
			strconv.FormatFloat(cs.ExteriorMAX[i], 'e', 8, 64),
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// StudyKey names the study a CSV row belongs to
func StudyKey(title string, NGrid int) string {
	return fmt.Sprintf("%s|%d", title, NGrid)
}

// ReadStudies parses CSV records written by WriteCSV, grouping rows by title
// and grid size. The first row is a header and is skipped.
func ReadStudies(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
	)
	studies = make(map[string]*ConvergenceStudy)
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = len(studyHeader)
	if records, err = cr.ReadAll(); err != nil {
		return nil, err
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		var (
			M, NGrid            int
			rms, maxErr, extMax float64
		)
		if M, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if NGrid, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if rms, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if maxErr, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if extMax, err = strconv.ParseFloat(rec[5], 64); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		combTitle := StudyKey(rec[0], NGrid)
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(rec[0], NGrid)
			studies[combTitle] = cs
		}
		cs.Add(M, rms, maxErr, extMax)
	}
	return
}
