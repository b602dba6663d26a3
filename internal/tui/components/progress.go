package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

const progressWidth = 30

// Progress renders overall generation completion.
type Progress struct {
	bar   progress.Model
	total int
}

// NewProgress creates a progress bar with the default gradient.
func NewProgress(total int) Progress {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = progressWidth
	return Progress{bar: bar, total: total}
}

// NewThemedProgress creates a progress bar blending from one hex color to
// another, typically the generated app's primary and accent colors.
func NewThemedProgress(total int, from, to string) Progress {
	bar := progress.New(progress.WithGradient(from, to))
	bar.Width = progressWidth
	return Progress{bar: bar, total: total}
}

// View renders the bar for the provided completion count. The bar is capped
// at full; the label shows the raw count.
func (p Progress) View(completed int) string {
	ratio := 0.0
	if p.total > 0 {
		ratio = math.Min(1.0, float64(completed)/float64(p.total))
	}

	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d/%d", completed, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(ratio))
}
