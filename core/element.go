package core

import "fmt"

// ElementCount is the number of known elements.
// Increment it when a new element is discovered.
const ElementCount = 118

// Classification is the chemical category of an element.
type Classification int

const (
	ClassUnknown Classification = iota // absent from the data source
	ClassLanthanide
	ClassActinide
	ClassNonmetal
	ClassMetal
	ClassNobleGas
	ClassTransitionMetal
	ClassHalogen
	ClassAlkaliMetal
	ClassMetalloid
	ClassAlkalineEarthMetal
	ClassTransactinide
)

var classNames = map[Classification]string{
	ClassLanthanide:         "Lanthanide",
	ClassActinide:           "Actinide",
	ClassNonmetal:           "Nonmetal",
	ClassMetal:              "Metal",
	ClassNobleGas:           "Noble Gas",
	ClassTransitionMetal:    "Transition Metal",
	ClassHalogen:            "Halogen",
	ClassAlkaliMetal:        "Alkali Metal",
	ClassMetalloid:          "Metalloid",
	ClassAlkalineEarthMetal: "Alkaline Earth Metal",
	ClassTransactinide:      "Transactinide",
}

// String returns the classification as spelled in the data file.
func (c Classification) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Classifications returns every known classification in declaration order.
func Classifications() []Classification {
	out := make([]Classification, 0, len(classNames))
	for c := ClassLanthanide; c <= ClassTransactinide; c++ {
		out = append(out, c)
	}
	return out
}

// ParseClassification maps a data-file type name to a Classification.
// Unknown or empty names return ClassUnknown and false.
func ParseClassification(name string) (Classification, bool) {
	for c, n := range classNames {
		if n == name {
			return c, true
		}
	}
	return ClassUnknown, false
}

// SymbolLengthError reports a symbol whose length is not 1 or 2.
type SymbolLengthError struct {
	Length int
}

func (e *SymbolLengthError) Error() string {
	return fmt.Sprintf("symbol length is out of bounds: found %d should be in the range [1,2]", e.Length)
}

// NumberError reports an atomic number that does not exist.
type NumberError struct {
	Number int
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("atomic number does not exist: found %d should be in the range [1-%d]", e.Number, ElementCount)
}

// Details carries optional descriptive data shown by the information block.
type Details struct {
	AtomicMass string
	Phase      string
}

// Element is a validated chemical element. It is immutable once built.
type Element struct {
	symbol         string
	number         int
	name           string
	classification Classification
	details        Details
}

// NewElement validates symbol and number and builds an Element.
// The symbol length is checked first, then the atomic number.
func NewElement(symbol string, number int, name string, class Classification) (Element, error) {
	if n := len(symbol); n < 1 || n > 2 {
		return Element{}, &SymbolLengthError{Length: n}
	}
	if number < 1 || number > ElementCount {
		return Element{}, &NumberError{Number: number}
	}
	return Element{
		symbol:         symbol,
		number:         number,
		name:           name,
		classification: class,
	}, nil
}

// WithDetails returns a copy of e carrying the given details.
func (e Element) WithDetails(d Details) Element {
	e.details = d
	return e
}

// Symbol returns the 1-2 character element symbol.
func (e Element) Symbol() string { return e.symbol }

// Number returns the atomic number.
func (e Element) Number() int { return e.number }

// Name returns the display name, possibly empty.
func (e Element) Name() string { return e.name }

// Classification returns the element's category; ClassUnknown when absent.
func (e Element) Classification() Classification { return e.classification }

// Details returns the optional descriptive data.
func (e Element) Details() Details { return e.details }

// String returns "Symbol (number)".
func (e Element) String() string {
	return fmt.Sprintf("%s (%d)", e.symbol, e.number)
}
