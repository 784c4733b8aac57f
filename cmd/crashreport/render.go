package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/crashreport/parse"
	"github.com/wippyai/crashreport/textconv"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	addrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	nilStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// render formats a parsed report. Without styling the output is plain text
// suitable for pipes.
func render(path string, rep *parse.Report, styled bool) string {
	paint := paintPlain
	if styled {
		paint = paintStyled
	}

	var b strings.Builder
	b.WriteString(paint(titleStyle, "Crash Report"))
	b.WriteString(" ")
	b.WriteString(path)
	b.WriteString("\n\n")
	b.WriteString(headerLines(rep, paint))
	b.WriteString("\n")

	for i, f := range rep.Frames {
		b.WriteString(frameLine(i, f, paint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(status(rep, paint))
	b.WriteString("\n")
	return b.String()
}

func headerLines(rep *parse.Report, paint func(lipgloss.Style, string) string) string {
	var b strings.Builder
	row := func(label string, value any) {
		fmt.Fprintf(&b, "%s %v\n", paint(labelStyle, fmt.Sprintf("%-10s", label)), value)
	}
	row("Signal", rep.Signal)
	row("Timestamp", rep.Timestamp)
	row("ThreadID", rep.ThreadID)
	row("Frames", fmt.Sprintf("%d of %d", len(rep.Frames), rep.FrameCount))
	return b.String()
}

func frameLine(i int, addr uintptr, paint func(lipgloss.Style, string) string) string {
	if addr == 0 {
		return fmt.Sprintf("#%-3d %s", i, paint(nilStyle, "0x0 (nil)"))
	}
	var buf [textconv.PointerSize]byte
	return fmt.Sprintf("#%-3d %s", i, paint(addrStyle, string(textconv.FormatPointer(buf[:], addr))))
}

func status(rep *parse.Report, paint func(lipgloss.Style, string) string) string {
	var notes []string
	if rep.Truncated() {
		notes = append(notes, fmt.Sprintf("truncated: %d frame(s) missing", rep.FrameCount-len(rep.Frames)))
	}
	if !rep.Complete {
		notes = append(notes, "end marker missing")
	}
	if n := rep.NilFrames(); n > 0 {
		notes = append(notes, fmt.Sprintf("%d nil frame(s)", n))
	}
	if len(notes) == 0 {
		return paint(helpStyle, "complete")
	}
	return paint(errorStyle, strings.Join(notes, "; "))
}
