package cli

import (
	"fmt"
	"strings"

	"tag-validator/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 2)
	if title != "" {
		content = StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
	}
	return box.Render(content)
}

// RenderTable renders an aligned table with a header separator line.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	const colGap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			rendered := cell
			if style != nil {
				rendered = style.Render(cell)
			}
			b.WriteString(rendered)
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, &StyleHeader)
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row, nil)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderReport formats a validation report for the terminal. Passing
// questions are listed only when showPassed is set.
func RenderReport(report *domain.ValidationReport, optional domain.OptionalTagConfig, showPassed bool) string {
	var b strings.Builder

	rate := fmt.Sprintf("%.1f%%", report.SuccessRate)
	switch {
	case report.Total == 0:
		rate = StyleDim.Render("n/a")
	case report.Failed == 0:
		rate = StyleGreen.Render(rate)
	case report.SuccessRate >= 80:
		rate = StyleYellow.Render(rate)
	default:
		rate = StyleRed.Render(rate)
	}
	summary := strings.Join([]string{
		fmt.Sprintf("Run           %s", report.RunID),
		fmt.Sprintf("Questions     %d", report.Total),
		fmt.Sprintf("Passed        %s", StyleGreen.Render(fmt.Sprint(report.Passed))),
		fmt.Sprintf("With issues   %s", StyleRed.Render(fmt.Sprint(report.Failed))),
		fmt.Sprintf("Success rate  %s", rate),
	}, "\n")
	if expected := expectedTags(optional); expected != "" {
		summary += "\nExpected      " + expected
	}
	b.WriteString(RenderBox("Tag validation", summary))
	b.WriteString("\n")

	if len(report.Warnings) > 0 {
		b.WriteString("\n" + Header("Warnings") + "\n")
		for _, w := range report.Warnings {
			b.WriteString(StyleYellow.Render("! "+w) + "\n")
		}
	}

	if report.Failed > 0 {
		b.WriteString("\n" + Header("Questions with issues") + "\n")
	}
	for _, r := range report.Results {
		if r.Passed {
			if showPassed {
				b.WriteString(StyleGreen.Render("✓ ") + r.QuestionID + StyleDim.Render(" ("+string(r.ModuleType)+")") + "\n")
			}
			continue
		}
		b.WriteString(StyleRed.Render("✗ ") + StyleBold.Render(r.QuestionID) + StyleDim.Render(" ("+string(r.ModuleType)+")") + "\n")
		for _, issue := range r.Issues {
			b.WriteString("    • " + issue.String() + "\n")
		}
	}
	if report.Total > 0 && report.Failed == 0 {
		b.WriteString("\n" + StyleGreen.Render("All questions passed.") + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func expectedTags(c domain.OptionalTagConfig) string {
	var tags []string
	for _, t := range []string{c.CourseTag, c.ModuleTag} {
		if t != "" {
			tags = append(tags, t)
		}
	}
	if len(c.UnitTags) > 0 {
		tags = append(tags, strings.Join(c.UnitTags, " | "))
	}
	if c.CompanyTag != "" {
		tags = append(tags, c.CompanyTag)
	}
	return strings.Join(tags, ", ")
}
