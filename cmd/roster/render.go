package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okapiworks/roster/internal/org"
	"github.com/okapiworks/roster/internal/reconcile"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4D96FF"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB454"))
)

func renderSummary(root string, summary reconcile.Summary) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("scanned %s", root)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  projects added:  %d\n", summary.ProjectsAdded)
	fmt.Fprintf(&b, "  employees added: %d\n", summary.EmployeesAdded)
	if len(summary.Issues) == 0 {
		return b.String()
	}
	b.WriteString(warnStyle.Render(fmt.Sprintf("  %d issue(s):", len(summary.Issues))))
	b.WriteString("\n")
	for _, issue := range summary.Issues {
		fmt.Fprintf(&b, "    %s\n", issue)
	}
	return b.String()
}

func renderRoster(roster *org.Roster) string {
	if roster == nil || len(roster.Projects) == 0 {
		return dimStyle.Render("roster is empty; run `roster scan` first") + "\n"
	}
	var b strings.Builder
	for _, project := range roster.Projects {
		b.WriteString(titleStyle.Render(project.Name))
		b.WriteString(dimStyle.Render(fmt.Sprintf("  [%s]", project.Status)))
		b.WriteString("\n")
		for _, dept := range project.Departments {
			fmt.Fprintf(&b, "  %s\n", dept.Tag)
			for _, emp := range dept.Employees {
				fmt.Fprintf(&b, "    %s %s\n", emp.Name, dimStyle.Render(fmt.Sprintf("(%s)", emp.AgentType)))
			}
		}
	}
	return b.String()
}
