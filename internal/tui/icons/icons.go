// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

// NerdFontsEnv forces Nerd Font icons on ("1"/"true") or off.
const NerdFontsEnv = "MIKRODASH_NERD_FONTS"

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// nerdFontTerminals are terminal programs that usually ship with a patched font
var nerdFontTerminals = []string{
	"iTerm.app",
	"alacritty",
	"WezTerm",
	"kitty",
	"ghostty",
}

// detectNerdFonts decides once per process whether to draw Nerd Font glyphs
func detectNerdFonts() bool {
	// MIKRODASH_NERD_FONTS wins over any detection
	if env := os.Getenv(NerdFontsEnv); env != "" {
		return env == "1" || strings.EqualFold(env, "true")
	}

	// TERM_PROGRAM names the app on macOS, TERM carries it on Linux
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	// Generic opt-in shared with other Nerd Font aware tools
	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}

	// Plain Unicode renders everywhere
	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Application and pages
	App        = Icon{"󰒍", "◈"} // nf-md-router_network
	Dashboard  = Icon{"󰕮", "▦"} // nf-md-view_dashboard
	System     = Icon{"", "●"} // nf-oct-cpu
	Interfaces = Icon{"󰈀", "⇅"} // nf-md-ethernet
	Alerts     = Icon{"󰀦", "⚑"} // nf-md-alert
	Logs       = Icon{"󰌱", "≡"} // nf-md-text_box
	Addresses  = Icon{"󰩟", "@"} // nf-md-ip_network
	Services   = Icon{"󰖩", "⌁"} // nf-md-wifi

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Critical = Icon{"", "✗"} // nf-oct-x_circle
	Info     = Icon{"", "ℹ"} // nf-oct-info

	// Actions
	Refresh = Icon{"󰑓", "↻"} // nf-md-refresh
	Pause   = Icon{"󰏤", "‖"} // nf-md-pause
	Device  = Icon{"󰒋", "▣"} // nf-md-server
)
