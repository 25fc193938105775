package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmylchreest/popkit/internal/geom"
	"github.com/jmylchreest/popkit/internal/keyevent"
)

// popupNode is the rendered context popup. It is both an event target
// (keys are delivered to it while it has focus) and a measurable node
// (the placer reads its candidate bounding box).
//
// A fresh node is created per open so the placer sees a new identity and
// runs exactly one measurement pass for it.
type popupNode struct {
	*keyevent.Dispatcher

	// box is the candidate bounding box: where the popup would land with
	// the default right/bottom lean, anchored at the selected row.
	box geom.Rect
}

func newPopupNode(anchorX, anchorY, cols, rows int) *popupNode {
	return &popupNode{
		Dispatcher: keyevent.NewDispatcher(),
		box: geom.Rect{
			X:      float64(anchorX),
			Y:      float64(anchorY + 1),
			Width:  float64(cols),
			Height: float64(rows),
		},
	}
}

// Bounds returns the candidate bounding box.
func (n *popupNode) Bounds() geom.Rect {
	return n.box
}

var (
	popupBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("12")).
				Padding(0, 1)

	popupTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	popupDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// renderPopup renders the popup box content for the given item title.
func renderPopup(title string, cols int) string {
	body := popupTitleStyle.Render(title) + "\n\n" +
		"c  copy\n" +
		"r  rename\n" +
		"d  delete\n\n" +
		popupDimStyle.Render("esc to close")

	return popupBorderStyle.Width(cols - 2).Render(body)
}
