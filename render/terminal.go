// Package render draws the periodic table state onto a canvas.
package render

import (
	"os"
	"strings"
)

// Capabilities represents the features supported by the current terminal.
type Capabilities struct {
	Name    string
	Unicode bool // box-drawing characters render correctly
	Color   bool
}

// Terminal modes accepted as an override.
const (
	ModeAuto    = ""
	ModeASCII   = "ascii"
	ModeUnicode = "unicode"
)

// DetectCapabilities detects the current terminal's capabilities from the
// environment. A non-empty mode ("ascii" or "unicode") forces the result.
func DetectCapabilities(mode string) Capabilities {
	return detectCapabilities(mode, os.Getenv)
}

func detectCapabilities(mode string, getenv func(string) string) Capabilities {
	switch mode {
	case ModeASCII:
		return ForceASCII()
	case ModeUnicode:
		return ForceUnicode()
	}

	term := getenv("TERM")
	caps := Capabilities{
		Name:    term,
		Unicode: detectUTF8Locale(getenv),
		Color:   term != "" && term != "dumb",
	}

	// Windows Terminal sets WT_SESSION and handles both
	if getenv("WT_SESSION") != "" {
		caps.Name = "windows-terminal"
		caps.Unicode = true
		caps.Color = true
	}

	// The linux console lacks rounded corners
	if term == "linux" || term == "dumb" {
		caps.Unicode = false
	}

	// Check for NO_COLOR environment variable (https://no-color.org/)
	if getenv("NO_COLOR") != "" {
		caps.Color = false
	}

	return caps
}

// detectUTF8Locale checks if the locale supports UTF-8.
func detectUTF8Locale(getenv func(string) string) bool {
	for _, env := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		value := getenv(env)
		if value == "" {
			continue
		}
		upper := strings.ToUpper(value)
		return strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}
	return false
}

// ForceASCII returns capabilities configured for ASCII-only output.
func ForceASCII() Capabilities {
	return Capabilities{Name: "ascii"}
}

// ForceUnicode returns capabilities configured for full Unicode support.
func ForceUnicode() Capabilities {
	return Capabilities{Name: "unicode", Unicode: true, Color: true}
}
