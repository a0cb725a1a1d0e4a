// Package reconcile merges scanned staff trees into a roster.
//
// The merge is additive and idempotent: entities found on disk are
// created when absent and left untouched when present, and nothing is
// ever pruned. A pass always completes; problems along the way surface
// as issues in the summary rather than errors.
package reconcile

import (
	"github.com/google/uuid"

	"github.com/okapiworks/roster/internal/org"
	"github.com/okapiworks/roster/internal/scan"
)

// employeeNamespace scopes the deterministic IDs minted for new
// employees, so re-scanning an unchanged tree reproduces the same IDs.
var employeeNamespace = uuid.MustParse("5b1f8a52-9c2e-47d3-b6aa-0f41c27de9be")

// Summary reports what one reconciliation pass changed.
type Summary struct {
	ProjectsAdded  int
	EmployeesAdded int
	Issues         []scan.Issue
}

// Reconciler applies scan results to a roster. It carries no state
// across runs; construct one where needed and pass the roster
// explicitly. The caller must guarantee exclusive access to the roster
// for the duration of a Run.
type Reconciler struct {
	// DefaultAgent is assumed for records that do not declare an
	// agent type.
	DefaultAgent org.AgentType
}

// New returns a Reconciler with the standard default agent type.
func New() *Reconciler {
	return &Reconciler{DefaultAgent: org.DefaultAgentType}
}

// Run scans the tree under root and merges what it finds into roster.
func (r *Reconciler) Run(root string, roster *org.Roster) Summary {
	fallback := r.DefaultAgent
	if fallback == "" {
		fallback = org.DefaultAgentType
	}
	result := scan.Scan(root, fallback)
	summary := Summary{Issues: result.Issues}
	for _, scanned := range result.Projects {
		r.mergeProject(roster, scanned, &summary)
	}
	return summary
}

func (r *Reconciler) mergeProject(roster *org.Roster, scanned scan.Project, summary *Summary) {
	if countEmployees(scanned) == 0 {
		// A project directory with no parseable records contributes
		// nothing, not an empty project.
		return
	}
	project := roster.FindProject(scanned.Name)
	if project == nil {
		project = &org.Project{Name: scanned.Name, Status: org.StatusPlanning}
		roster.AddProject(project)
		summary.ProjectsAdded++
	}
	for _, dept := range scanned.Departments {
		if len(dept.Employees) == 0 {
			continue
		}
		target := project.EnsureDepartment(dept.Tag)
		for _, emp := range dept.Employees {
			if target.FindEmployee(emp.Name) != nil {
				// First write wins; later records with the same
				// name are skipped untouched.
				continue
			}
			created := emp
			created.ID = employeeID(project.Name, dept.Tag, emp.Name)
			target.AddEmployee(&created)
			summary.EmployeesAdded++
		}
	}
}

func countEmployees(p scan.Project) int {
	total := 0
	for _, dept := range p.Departments {
		total += len(dept.Employees)
	}
	return total
}

func employeeID(project string, tag org.DepartmentTag, name string) string {
	key := project + "/" + string(tag) + "/" + name
	return uuid.NewSHA1(employeeNamespace, []byte(key)).String()
}
