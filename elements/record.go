// Package elements reads periodic table records from CSV and turns them into
// validated core.Element values.
package elements

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column names of the element data file.
const (
	ColumnNumber = "AtomicNumber"
	ColumnName   = "Element"
	ColumnSymbol = "Symbol"
	ColumnMass   = "AtomicMass"
	ColumnPeriod = "Period"
	ColumnGroup  = "Group"
	ColumnPhase  = "Phase"
	ColumnType   = "Type"
)

var requiredColumns = []string{ColumnNumber, ColumnName, ColumnSymbol, ColumnPeriod, ColumnGroup}

// Record is one raw row of the data file, typed but not yet validated.
type Record struct {
	Line         int
	AtomicNumber int
	Name         string
	Symbol       string
	AtomicMass   string
	Period       int
	Group        int // 0 when the data file leaves it empty
	Phase        string
	Type         string
}

// Decode reads every record of a CSV element table.
// Columns are located by header name; unknown columns are ignored, so the
// full data set with its physical properties decodes as well as a trimmed one.
func Decode(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Kind: KindDecode, Line: 1, Err: errors.New("missing header row")}
		}
		return nil, decodeError(err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &LoadError{Kind: KindDecode, Line: 1, Err: fmt.Errorf("missing column %q", col)}
		}
	}

	var records []Record
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, decodeError(err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRecord(fields, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(fields []string, index map[string]int, line int) (Record, error) {
	get := func(col string) string {
		i, ok := index[col]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	rec := Record{
		Line:       line,
		Name:       get(ColumnName),
		Symbol:     get(ColumnSymbol),
		AtomicMass: get(ColumnMass),
		Phase:      get(ColumnPhase),
		Type:       get(ColumnType),
	}

	var err error
	if rec.AtomicNumber, err = parseInt(get(ColumnNumber), ColumnNumber, false); err != nil {
		return Record{}, &LoadError{Kind: KindDecode, Line: line, Symbol: rec.Symbol, Err: err}
	}
	if rec.Period, err = parseInt(get(ColumnPeriod), ColumnPeriod, false); err != nil {
		return Record{}, &LoadError{Kind: KindDecode, Line: line, Symbol: rec.Symbol, Err: err}
	}
	if rec.Group, err = parseInt(get(ColumnGroup), ColumnGroup, true); err != nil {
		return Record{}, &LoadError{Kind: KindDecode, Line: line, Symbol: rec.Symbol, Err: err}
	}

	return rec, nil
}

// parseInt parses a non-negative integer field. Empty optional fields yield 0.
func parseInt(value, column string, optional bool) (int, error) {
	if value == "" {
		if optional {
			return 0, nil
		}
		return 0, fmt.Errorf("column %s is empty", column)
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("column %s: %q is not a valid number", column, value)
	}
	return n, nil
}

func decodeError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &LoadError{Kind: KindDecode, Line: perr.Line, Err: perr.Err}
	}
	return &LoadError{Kind: KindSource, Err: err}
}
