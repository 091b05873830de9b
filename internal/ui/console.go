// Package ui renders the CLI's banner, live progress bar, and result
// summaries. It knows nothing about how a search is driven — only how to
// print the numbers a *vanity.Generator already exposes.
package ui

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ANSI color codes.
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// ClearScreen clears the terminal.
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}

// PrintBanner shows the welcome screen.
func PrintBanner(version string) {
	fmt.Println()
	fmt.Printf("%s%s", ColorCyan, ColorBold)
	fmt.Println("  ╔════════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("  ║  ███████╗ ██████╗ ██╗      █████╗ ███╗   ██╗ █████╗     ██╗   ██╗ █████╗ ███╗   ██╗ ║")
	fmt.Println("  ║  ██╔════╝██╔═══██╗██║     ██╔══██╗████╗  ██║██╔══██╗    ██║   ██║██╔══██╗████╗  ██║ ║")
	fmt.Println("  ║  ███████╗██║   ██║██║     ███████║██╔██╗ ██║███████║    ██║   ██║███████║██╔██╗ ██║ ║")
	fmt.Println("  ║  ╚════██║██║   ██║██║     ██╔══██║██║╚██╗██║██╔══██║    ╚██╗ ██╔╝██╔══██║██║╚██╗██║ ║")
	fmt.Println("  ║  ███████║╚██████╔╝███████╗██║  ██║██║ ╚████║██║  ██║     ╚████╔╝ ██║  ██║██║ ╚████║ ║")
	fmt.Println("  ║  ╚══════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝      ╚═══╝  ╚═╝  ╚═╝╚═╝  ╚═══╝ ║")
	fmt.Println("  ╠════════════════════════════════════════════════════════════════════════════════╣")
	fmt.Printf("  ║%s        Solana Vanity Keypair Search %s• v%s%s                                       ║\n", ColorYellow, ColorDim, version, ColorCyan+ColorBold)
	fmt.Println("  ╚════════════════════════════════════════════════════════════════════════════════╝")
	fmt.Print(ColorReset)
	fmt.Println()
}

// PrintSearchInfo describes the pattern and expected difficulty before a
// search starts. difficulty is the expected number of attempts per match.
func PrintSearchInfo(beginsWith, endsWith string, workers int, findKeys int64, difficulty uint64) {
	fmt.Printf("\n    %s🚀 SEARCHING%s", ColorGreen+ColorBold, ColorReset)
	if beginsWith != "" {
		fmt.Printf(" %s%s%s%s...%s", ColorBold, ColorCyan, beginsWith, ColorDim, ColorReset)
	}
	if endsWith != "" {
		fmt.Printf("%s...%s%s%s%s", ColorDim, ColorCyan, ColorBold, endsWith, ColorReset)
	}
	fmt.Printf(" %s(1/%s, %d workers, target %d)%s\n\n", ColorDim, FormatNumber(difficulty), workers, findKeys, ColorReset)
}

// PrintProgress shows an animated progress bar based on searched/difficulty.
func PrintProgress(found int32, searched uint64, hashRate float64, elapsed time.Duration, difficulty uint64, frame int) {
	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[frame%len(spinners)]

	diff := float64(difficulty)
	if diff == 0 {
		diff = 1
	}
	ratio := float64(searched) / diff
	progress := 1.0 - math.Pow(0.5, 2.0*ratio)

	barWidth := 40
	filled := int(progress * float64(barWidth))
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("▓", filled) + strings.Repeat("░", barWidth-filled)

	fmt.Printf("\r    %s%s%s %s%s%s %s%s%s │ found %s%d%s │ %s%s%s │ %s",
		ColorCyan, spinner, ColorReset,
		ColorDim, bar, ColorReset,
		ColorGreen+ColorBold, FormatHashRate(hashRate), ColorReset,
		ColorYellow, found, ColorReset,
		ColorYellow, FormatNumber(searched), ColorReset,
		FormatDuration(elapsed))
}

// FormatHashRate formats a keys/sec rate for display.
func FormatHashRate(rate float64) string {
	switch {
	case rate >= 1_000_000:
		return fmt.Sprintf("%.1fM/s", rate/1_000_000)
	case rate >= 1_000:
		return fmt.Sprintf("%.1fK/s", rate/1_000)
	default:
		return fmt.Sprintf("%.0f/s", rate)
	}
}

// PrintMatch shows a single found keypair.
func PrintMatch(base58PublicKey string, elapsed time.Duration, attemptsBySearch uint64, path string) {
	fmt.Printf("\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s║               ✨ KEYPAIR FOUND! ✨                       ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorGreen, ColorBold, ColorReset)

	fmt.Printf("    %s◎ SOLANA PUBLIC KEY%s\n", ColorCyan+ColorBold, ColorReset)
	fmt.Println()
	fmt.Printf("       %s%s%s%s\n\n", ColorGreen, ColorBold, base58PublicKey, ColorReset)

	fmt.Printf("    %s⏱   %s%s   %s│   %s📊  %s%s   %s│   %s💾  %s%s%s\n\n",
		ColorCyan, ColorReset+ColorBold, FormatDuration(elapsed),
		ColorDim,
		ColorPurple, ColorReset+ColorBold, FormatNumber(attemptsBySearch),
		ColorDim,
		ColorYellow, ColorReset+ColorBold, path,
		ColorReset)
	fmt.Printf("    %s%s⚠  KEEP YOUR SECRET KEY FILE SAFE!%s\n", ColorRed, ColorBold, ColorReset)
}

// ClearLine clears the current line.
func ClearLine() {
	fmt.Print("\r                                                                                              \r")
}

// FormatNumber adds thousands separators to n.
func FormatNumber[T ~int | ~int32 | ~int64 | ~uint64](n T) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FormatDuration formats d for compact, human-readable display.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		h := int(d.Hours())
		m := int(d.Minutes()) % 60
		return fmt.Sprintf("%dh %dm", h, m)
	}
}
