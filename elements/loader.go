package elements

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"ptable/core"
	"strings"
)

// DefaultSource names the embedded data set in messages and logs.
const DefaultSource = "embedded:periodic-table-of-elements.csv"

//go:embed data/periodic-table-of-elements.csv
var defaultTable []byte

// Entry is a validated element together with its table coordinates as found
// in the data file. Group is 0 for records without a group.
type Entry struct {
	Element core.Element
	Period  int
	Group   int
}

// Load validates decoded records and builds their elements.
// The first invalid record aborts the load.
func Load(records []Record) ([]Entry, error) {
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		class, _ := core.ParseClassification(rec.Type)
		symbol := strings.TrimSpace(rec.Symbol)

		el, err := core.NewElement(symbol, rec.AtomicNumber, rec.Name, class)
		if err != nil {
			return nil, &LoadError{Kind: KindInvalidElement, Line: rec.Line, Symbol: symbol, Err: err}
		}
		el = el.WithDetails(core.Details{AtomicMass: rec.AtomicMass, Phase: rec.Phase})

		entries = append(entries, Entry{Element: el, Period: rec.Period, Group: rec.Group})
	}
	return entries, nil
}

// Read decodes and validates every record from r.
func Read(r io.Reader) ([]Entry, error) {
	records, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return Load(records)
}

// LoadFile reads the element table at path.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindSource, Err: err}
	}
	defer file.Close()

	return Read(file)
}

// LoadDefault reads the data set compiled into the binary.
func LoadDefault() ([]Entry, error) {
	return Read(bytes.NewReader(defaultTable))
}
