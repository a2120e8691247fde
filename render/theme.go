package render

import (
	"fmt"
	"ptable/canvas"
	"ptable/core"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// focusBlend is how far the focused cell's background moves from the
// classification color toward the focus color.
const focusBlend = 0.4

// Theme holds the styles used to draw the table.
type Theme struct {
	Box      canvas.BoxStyle
	FocusBox canvas.BoxStyle
	Text     tcell.Style
	Border   tcell.Style
	Prompt   tcell.Style
	Error    tcell.Style

	focus   colorful.Color
	classes map[core.Classification]colorful.Color
	mono    bool
}

// ThemeSpec is the user-editable form of a Theme, as stored in a TOML file.
// Colors are "#rrggbb" hex strings; classes are keyed by their data-file name.
type ThemeSpec struct {
	Box     string            `toml:"box"`
	Border  string            `toml:"border"`
	Text    string            `toml:"text"`
	Focus   string            `toml:"focus"`
	Prompt  string            `toml:"prompt"`
	Classes map[string]string `toml:"classes"`
}

// DefaultThemeSpec returns the built-in color scheme.
func DefaultThemeSpec() ThemeSpec {
	return ThemeSpec{
		Box:    "rounded",
		Border: "#6c6c6c",
		Text:   "#e4e4e4",
		Focus:  "#ffffff",
		Prompt: "#ffd75f",
		Classes: map[string]string{
			"Unknown":              "#8a8a8a",
			"Lanthanide":           "#ffafd7",
			"Actinide":             "#ff87af",
			"Nonmetal":             "#87ff87",
			"Metal":                "#bcbcbc",
			"Noble Gas":            "#87d7ff",
			"Transition Metal":     "#ff8787",
			"Halogen":              "#ffff87",
			"Alkali Metal":         "#ff5f5f",
			"Metalloid":            "#d7d787",
			"Alkaline Earth Metal": "#ffd7af",
			"Transactinide":        "#d0d0d0",
		},
	}
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	t, err := BuildTheme(DefaultThemeSpec())
	if err != nil {
		panic(fmt.Sprintf("render: default theme: %v", err))
	}
	return t
}

// BuildTheme converts a ThemeSpec into a Theme. Empty fields keep the
// default value; classes it leaves out keep their default color.
func BuildTheme(spec ThemeSpec) (Theme, error) {
	def := DefaultThemeSpec()
	if spec.Box == "" {
		spec.Box = def.Box
	}
	box, ok := canvas.BoxStyleByName(spec.Box)
	if !ok {
		return Theme{}, fmt.Errorf("unknown box style %q", spec.Box)
	}

	colors := make(map[string]colorful.Color, 4)
	for _, field := range []struct {
		name, value, fallback string
	}{
		{"border", spec.Border, def.Border},
		{"text", spec.Text, def.Text},
		{"focus", spec.Focus, def.Focus},
		{"prompt", spec.Prompt, def.Prompt},
	} {
		value := field.value
		if value == "" {
			value = field.fallback
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return Theme{}, fmt.Errorf("%s color %q: %w", field.name, value, err)
		}
		colors[field.name] = c
	}

	classes := make(map[core.Classification]colorful.Color, len(def.Classes))
	for _, src := range []map[string]string{def.Classes, spec.Classes} {
		for name, value := range src {
			class, ok := ParseClassName(name)
			if !ok {
				return Theme{}, fmt.Errorf("unknown classification %q", name)
			}
			c, err := colorful.Hex(value)
			if err != nil {
				return Theme{}, fmt.Errorf("classification %q color %q: %w", name, value, err)
			}
			classes[class] = c
		}
	}

	return Theme{
		Box:      box,
		FocusBox: canvas.DoubleBoxStyle,
		Text:     tcell.StyleDefault.Foreground(toTcell(colors["text"])),
		Border:   tcell.StyleDefault.Foreground(toTcell(colors["border"])),
		Prompt:   tcell.StyleDefault.Foreground(toTcell(colors["prompt"])).Bold(true),
		Error:    tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
		focus:    colors["focus"],
		classes:  classes,
	}, nil
}

// ParseClassName accepts every data-file classification name plus "Unknown".
func ParseClassName(name string) (core.Classification, bool) {
	if name == core.ClassUnknown.String() {
		return core.ClassUnknown, true
	}
	return core.ParseClassification(name)
}

// WithCapabilities adapts the theme to what the terminal can display.
func (t Theme) WithCapabilities(caps Capabilities) Theme {
	if !caps.Unicode {
		t.Box = canvas.SimpleBoxStyle
		t.FocusBox = canvas.SimpleBoxStyle
	}
	if !caps.Color {
		t.mono = true
		t.Text = tcell.StyleDefault
		t.Border = tcell.StyleDefault
		t.Prompt = tcell.StyleDefault.Bold(true)
		t.Error = tcell.StyleDefault.Bold(true)
	}
	return t
}

// ClassColor returns the color assigned to a classification.
func (t Theme) ClassColor(c core.Classification) colorful.Color {
	if col, ok := t.classes[c]; ok {
		return col
	}
	return t.classes[core.ClassUnknown]
}

// Symbol returns the style of an element symbol.
func (t Theme) Symbol(c core.Classification) tcell.Style {
	if t.mono {
		return tcell.StyleDefault.Bold(true)
	}
	return tcell.StyleDefault.Foreground(toTcell(t.ClassColor(c))).Bold(true)
}

// CellBorder returns the style of an element's border.
func (t Theme) CellBorder(c core.Classification) tcell.Style {
	if t.mono {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(toTcell(t.ClassColor(c)))
}

// Focused returns the style filling the focused cell: the classification
// color blended toward the focus color, with dark text on top.
func (t Theme) Focused(c core.Classification) tcell.Style {
	if t.mono {
		return tcell.StyleDefault.Reverse(true)
	}
	bg := t.ClassColor(c).BlendLab(t.focus, focusBlend).Clamped()
	return tcell.StyleDefault.Background(toTcell(bg)).Foreground(tcell.ColorBlack)
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
