package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/gophtasks/internal/client/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	idStyle      = lipgloss.NewStyle().Faint(true)
	dateStyle    = lipgloss.NewStyle().Faint(true)
)

// renderTask formats one task as a single line: id, text, last change.
func renderTask(t models.Task) string {
	return fmt.Sprintf("%s  %s  %s",
		idStyle.Render(t.ID),
		t.Text,
		dateStyle.Render(t.UpdatedAt.Local().Format("2006-01-02 15:04")),
	)
}
