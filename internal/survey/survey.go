// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package survey turns household survey records into a proportion
// matrix of bequests received by age and lifetime-income group.
package survey

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Column names read by ReadRecords.
const (
	ColAge         = "age"
	ColLIGroup     = "li_group"
	ColYear        = "year_data"
	ColInheritance = "inheritance"
)

// Defaults for Options.
const (
	DefaultS           = 80
	DefaultJ           = 7
	DefaultFirstAge    = 18
	DefaultFirstIncome = 1
	DefaultMinYear     = 1988
)

var (
	// ErrNoData is returned by Tabulate when no record contributes
	// any inheritance.
	ErrNoData = errors.New("survey: no inheritance data")

	// ErrMissingColumn is returned by ReadRecords when the header
	// lacks a required column.
	ErrMissingColumn = errors.New("survey: missing column")
)

// Record is one household-year observation.
type Record struct {
	Age     int
	LIGroup int
	Year    int

	// Inheritance is the value inherited in Year. It is NaN when
	// the survey did not record it.
	Inheritance float64
}

// ReadRecords reads records from CSV with a header row. The header
// must name the age, li_group, year_data and inheritance columns, in
// any order; other columns are ignored. A blank or "NaN" inheritance
// is read as NaN.
func ReadRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("survey: read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	var cols [4]int
	for k, name := range []string{ColAge, ColLIGroup, ColYear, ColInheritance} {
		i, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, name)
		}
		cols[k] = i
	}

	var recs []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("survey: %w", err)
		}
		var rec Record
		for k, p := range []*int{&rec.Age, &rec.LIGroup, &rec.Year} {
			v, err := parseInt(row[cols[k]])
			if err != nil {
				return nil, fmt.Errorf("survey: line %d: %s: %w", line, header[cols[k]], err)
			}
			*p = v
		}
		rec.Inheritance, err = parseValue(row[cols[3]])
		if err != nil {
			return nil, fmt.Errorf("survey: line %d: %s: %w", line, ColInheritance, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// parseInt accepts integers written as floats, such as "45.0".
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Options control Tabulate. Zero fields take their defaults.
type Options struct {
	// S and J are the number of age categories and income groups.
	S, J int

	// FirstAge and FirstIncome are the age and the income group of
	// the first row and the first column.
	FirstAge, FirstIncome int

	// MinYear is the first survey year used.
	MinYear int
}

func (o Options) withDefaults() Options {
	if o.S == 0 {
		o.S = DefaultS
	}
	if o.J == 0 {
		o.J = DefaultJ
	}
	if o.FirstAge == 0 {
		o.FirstAge = DefaultFirstAge
	}
	if o.FirstIncome == 0 {
		o.FirstIncome = DefaultFirstIncome
	}
	if o.MinYear == 0 {
		o.MinYear = DefaultMinYear
	}
	return o
}

// Table is a tabulated proportion matrix.
type Table struct {
	// Proportions[i][j] is the share of all inheritance received
	// at age FirstAge+i by income group FirstIncome+j. Cells with
	// no records are 0.
	Proportions *mat.Dense

	// Total is the inheritance summed over all used records.
	Total float64

	// Used counts the records that fell in the grid. Skipped
	// counts records before MinYear or with no inheritance value,
	// and OutOfGrid those with an age or income group outside it.
	Used, Skipped, OutOfGrid int
}

// Tabulate sums inheritance by age and income group over the records
// from MinYear onwards and divides by the grand total.
func Tabulate(recs []Record, opts Options) (*Table, error) {
	opts = opts.withDefaults()
	if opts.S < 0 || opts.J < 0 {
		return nil, fmt.Errorf("survey: invalid grid %d×%d", opts.S, opts.J)
	}

	t := &Table{Proportions: mat.NewDense(opts.S, opts.J, nil)}
	for _, rec := range recs {
		if rec.Year < opts.MinYear || math.IsNaN(rec.Inheritance) {
			t.Skipped++
			continue
		}
		i, j := rec.Age-opts.FirstAge, rec.LIGroup-opts.FirstIncome
		if i < 0 || i >= opts.S || j < 0 || j >= opts.J {
			t.OutOfGrid++
			continue
		}
		t.Proportions.Set(i, j, t.Proportions.At(i, j)+rec.Inheritance)
		t.Total += rec.Inheritance
		t.Used++
	}
	if t.Total == 0 || math.IsNaN(t.Total) {
		return nil, fmt.Errorf("%w: %d records used, %d skipped, %d out of grid",
			ErrNoData, t.Used, t.Skipped, t.OutOfGrid)
	}
	t.Proportions.Scale(1/t.Total, t.Proportions)
	return t, nil
}
