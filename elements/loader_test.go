package elements

import (
	"errors"
	"os"
	"path/filepath"
	"ptable/core"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "AtomicNumber,Element,Symbol,AtomicMass,Period,Group,Phase,Type\n"

func TestRead_Valid(t *testing.T) {
	input := header +
		"1,Hydrogen, H ,1.007,1,1,gas,Nonmetal\n" +
		"2,Helium,He,4.002,1,18,gas,Noble Gas\n" +
		"57,Lanthanum,La,138.905,6,,solid,Lanthanide\n"

	entries, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	h := entries[0]
	assert.Equal(t, "H", h.Element.Symbol(), "symbol is trimmed")
	assert.Equal(t, 1, h.Element.Number())
	assert.Equal(t, "Hydrogen", h.Element.Name())
	assert.Equal(t, core.ClassNonmetal, h.Element.Classification())
	assert.Equal(t, "1.007", h.Element.Details().AtomicMass)
	assert.Equal(t, 1, h.Period)
	assert.Equal(t, 1, h.Group)

	assert.Equal(t, core.ClassNobleGas, entries[1].Element.Classification())
	assert.Equal(t, 18, entries[1].Group)

	assert.Equal(t, 0, entries[2].Group, "empty group decodes as none")
	assert.Equal(t, 6, entries[2].Period)
}

func TestRead_ColumnsByName(t *testing.T) {
	input := "Symbol,Period,Group,Element,AtomicNumber,Discoverer\n" +
		"Fe,4,8,Iron,26,Unknown\n"

	entries, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Fe", entries[0].Element.Symbol())
	assert.Equal(t, 26, entries[0].Element.Number())
	assert.Equal(t, core.ClassUnknown, entries[0].Element.Classification(), "missing type is absent")
}

func TestRead_UnknownTypeIsAbsent(t *testing.T) {
	entries, err := Read(strings.NewReader(header + "26,Iron,Fe,55.845,4,8,solid,Shiny\n"))
	require.NoError(t, err)
	assert.Equal(t, core.ClassUnknown, entries[0].Element.Classification())
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   error
		symbol string
		line   int
	}{
		{"empty input", "", ErrDecode, "", 1},
		{"missing column", "AtomicNumber,Element,Symbol,Period\n1,Hydrogen,H,1\n", ErrDecode, "", 1},
		{"field count", header + "1,Hydrogen,H,1.007,1,1\n", ErrDecode, "", 2},
		{"non numeric number", header + "one,Hydrogen,H,1.007,1,1,gas,Nonmetal\n", ErrDecode, "H", 2},
		{"non numeric group", header + "1,Hydrogen,H,1.007,1,first,gas,Nonmetal\n", ErrDecode, "H", 2},
		{"empty period", header + "1,Hydrogen,H,1.007,,1,gas,Nonmetal\n", ErrDecode, "H", 2},
		{"long symbol", header + "1,Hydrogen,Hyd,1.007,1,1,gas,Nonmetal\n", ErrInvalidElement, "Hyd", 2},
		{"number out of range", header + "2,Helium,He,4,1,18,gas,Noble Gas\n119,Ununennium,Ue,315,8,1,,\n", ErrInvalidElement, "Ue", 3},
		{"number zero", header + "0,Nothing,Nt,0,1,1,,\n", ErrInvalidElement, "Nt", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)

			var lerr *LoadError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.symbol, lerr.Symbol)
			assert.Equal(t, tt.line, lerr.Line)
		})
	}
}

func TestLoad_WrapsElementError(t *testing.T) {
	_, err := Load([]Record{{Line: 7, AtomicNumber: 3, Symbol: "  "}})
	require.Error(t, err)

	var lenErr *core.SymbolLengthError
	require.True(t, errors.As(err, &lenErr), "construction error is wrapped")
	assert.Equal(t, 0, lenErr.Length, "whitespace is trimmed before validation")
	assert.Contains(t, err.Error(), "line 7")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"8,Oxygen,O,15.999,2,16,gas,Nonmetal\n"), 0o644))

	entries, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "O", entries[0].Element.Symbol())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSource))
	assert.True(t, errors.Is(err, os.ErrNotExist), "underlying error stays reachable")
}

func TestLoadDefault(t *testing.T) {
	entries, err := LoadDefault()
	require.NoError(t, err)
	require.Len(t, entries, core.ElementCount)

	seen := make(map[int]bool)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Element.Number(), "records are ordered by atomic number")
		assert.NotEmpty(t, e.Element.Name())
		assert.NotEqual(t, core.ClassUnknown, e.Element.Classification(), e.Element.Symbol())
		seen[e.Element.Number()] = true
	}
	assert.Len(t, seen, core.ElementCount)
}
