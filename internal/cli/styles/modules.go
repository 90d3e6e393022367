package styles

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shade/internal/application/port"
)

const meterWidth = 20

// ModuleRow is one line of the modules listing.
type ModuleRow struct {
	Name   string
	Icon   port.Icon
	Value  float64
	Slider bool
}

// ModulesRenderer renders module values as meters.
type ModulesRenderer struct {
	theme *Theme
}

// NewModulesRenderer creates a new modules renderer with the given theme.
func NewModulesRenderer(theme *Theme) *ModulesRenderer {
	return &ModulesRenderer{theme: theme}
}

// Render renders one row per module, or a hint when none probed.
func (r *ModulesRenderer) Render(rows []ModuleRow) string {
	if len(rows) == 0 {
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconWarning), r.theme.Subtle.Render("No modules available"))
	}

	nameWidth := 0
	for _, row := range rows {
		nameWidth = max(nameWidth, lipgloss.Width(row.Name))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString("  ")
		sb.WriteString(r.renderRow(row, nameWidth))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSet renders the confirmation of a module write.
func (r *ModulesRenderer) RenderSet(row ModuleRow, err error) string {
	if err != nil {
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		return fmt.Sprintf(
			"\n  %s %s set to %s, write incomplete: %v\n",
			iconStyle.Render(IconWarning),
			r.theme.Title.Render(row.Name),
			r.theme.Highlight.Render(Percent(row.Value)),
			err,
		)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf(
		"\n  %s %s set to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Title.Render(row.Name),
		r.theme.Highlight.Render(Percent(row.Value)),
	)
}

func (r *ModulesRenderer) renderRow(row ModuleRow, nameWidth int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	name := r.theme.Title.Width(nameWidth).Render(row.Name)

	if !row.Slider {
		return fmt.Sprintf("%s %s", iconStyle.Render(moduleIcon(row.Icon)), name)
	}

	return fmt.Sprintf("%s %s  %s %s",
		iconStyle.Render(moduleIcon(row.Icon)),
		name,
		r.Meter(row.Value, meterWidth),
		r.theme.Subtle.Render(Percent(row.Value)),
	)
}

// Meter renders value in [0, 1] as a filled bar of width cells.
func (r *ModulesRenderer) Meter(value float64, width int) string {
	filled := int(math.Round(clampUnit(value) * float64(width)))
	fill := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(strings.Repeat("━", filled))
	rest := lipgloss.NewStyle().Foreground(r.theme.Track).Render(strings.Repeat("━", width-filled))
	return fill + rest
}

// Percent formats value in [0, 1] as a whole percentage.
func Percent(value float64) string {
	return fmt.Sprintf("%3d%%", int(math.Round(clampUnit(value)*100)))
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return min(max(v, 0), 1)
}

func moduleIcon(icon port.Icon) string {
	switch icon {
	case port.IconBrightness:
		return IconBrightness
	case port.IconVolume:
		return IconVolume
	default:
		return IconModule
	}
}
