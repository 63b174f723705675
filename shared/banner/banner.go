// Package banner prints the application title on the diagnostic stream.
package banner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thirukguru/cloudwaf-origin-detector/model"
	"github.com/thirukguru/cloudwaf-origin-detector/shared/ansi"
	"github.com/thirukguru/cloudwaf-origin-detector/shared/console"
	"golang.org/x/term"
)

type bannerColor int

const (
	bannerFastlyRed bannerColor = iota
	bannerSignalSciencesPurple
	bannerAmazonOrange
	bannerIBMBlue
	bannerSpotifyGreen
)

var bannerTitleColors = []string{
	"\x1b[38;2;255;40;45m",  // Fastly Red
	"\x1b[38;2;145;70;255m", // Signal Sciences Purple
	"\x1b[38;2;255;153;0m",  // Amazon Orange
	"\x1b[38;2;15;98;254m",  // IBM Blue
	"\x1b[38;2;30;215;96m",  // Spotify Green
}

var bannerTitleColorNames = []string{
	"FastlyRed",
	"SignalSciencesPurple",
	"AmazonOrange",
	"IBMBlue",
	"SpotifyGreen",
}

const (
	bannerTitleColorDefault        = bannerFastlyRed
	bannerTitleColorBlueBackground = bannerAmazonOrange
	bannerTitleColorEnv            = "CLOUDWAF_DETECTOR_BANNER_COLOR"
)

func titleLines(v model.VersionInfo) []string {
	title := "cloudwaf-origin-detector " + v.Version
	rule := strings.Repeat("═", len([]rune(title))+4)
	return []string{
		"╔" + rule + "╗",
		"║  " + title + "  ║",
		"╚" + rule + "╝",
	}
}

func writeCenteredLines(w io.Writer, lines []string, width int) {
	for _, line := range lines {
		pad := 0
		if n := len([]rune(line)); width > n {
			pad = (width - n) / 2
		}
		fmt.Fprint(w, strings.Repeat(" ", pad))
		fmt.Fprintln(w, line)
	}
}

func bannerTitleColor(f *os.File) bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground(f) {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))
	if raw == "" {
		return 0, false
	}

	for idx, color := range bannerTitleColors {
		if strings.EqualFold(raw, bannerTitleColorNames[idx]) || raw == color {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

// ShouldDraw reports whether f is an interactive terminal worth decorating.
func ShouldDraw(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DrawBannerTitle prints the application title banner to f.
func DrawBannerTitle(f *os.File, v model.VersionInfo) {
	ansi.EnableANSI(f)

	width := 80
	if w, _, err := term.GetSize(int(f.Fd())); err == nil {
		width = w
	}

	fmt.Fprint(f, bannerTitleColors[bannerTitleColor(f)])
	writeCenteredLines(f, titleLines(v), width)
	fmt.Fprint(f, "\x1b[0m")
}
