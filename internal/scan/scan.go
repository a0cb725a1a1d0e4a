// Package scan walks an on-disk staff tree and turns it into typed
// project, department, and employee entries ready for reconciliation.
//
// The tree layout is a fixed contract:
//
//	<root>/<project>/<department>/people/<employee>.md
//
// Directory names starting with '.' or '_' denote hidden or system
// directories and are skipped. A partially populated tree is normal:
// missing directories contribute zero entries, and unreadable subtrees
// are reported as issues without aborting the walk.
package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/okapiworks/roster/internal/org"
	"github.com/okapiworks/roster/internal/record"
)

const (
	// PeopleDir is the fixed container for record files inside each
	// department directory.
	PeopleDir = "people"

	// RecordExt is the extension expected on employee record files.
	RecordExt = ".md"
)

// Issue records a non-fatal problem encountered during a walk.
type Issue struct {
	Path   string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Reason)
}

// Department holds the employees found under one classified directory.
type Department struct {
	Tag       org.DepartmentTag
	Employees []org.Employee
}

// Project collects the departments scanned under one project directory.
type Project struct {
	Name        string // display name derived from the directory name
	Departments []Department
}

// Result is a completed walk: the entries found plus accumulated issues.
type Result struct {
	Projects []Project
	Issues   []Issue
}

// Scan walks exactly two directory levels below root, collecting
// employee records from people/ containers. fallback is the agent type
// assumed for records that do not declare one. A missing root yields an
// empty result.
func Scan(root string, fallback org.AgentType) Result {
	var res Result
	entries, ok := readDir(root, &res)
	if !ok {
		return res
	}
	for _, entry := range entries {
		if !entry.IsDir() || hidden(entry.Name()) {
			continue
		}
		project := scanProject(filepath.Join(root, entry.Name()), entry.Name(), fallback, &res)
		res.Projects = append(res.Projects, project)
	}
	return res
}

func scanProject(dir, dirName string, fallback org.AgentType, res *Result) Project {
	project := Project{Name: DisplayName(dirName)}
	entries, ok := readDir(dir, res)
	if !ok {
		return project
	}
	for _, entry := range entries {
		if !entry.IsDir() || hidden(entry.Name()) {
			continue
		}
		dept := Department{Tag: org.ParseDepartmentTag(entry.Name())}
		scanPeople(filepath.Join(dir, entry.Name(), PeopleDir), &dept, fallback, res)
		project.Departments = append(project.Departments, dept)
	}
	return project
}

func scanPeople(dir string, dept *Department, fallback org.AgentType, res *Result) {
	entries, ok := readDir(dir, res)
	if !ok {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), RecordExt) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			res.Issues = append(res.Issues, Issue{Path: path, Reason: fmt.Sprintf("read record: %v", err)})
			continue
		}
		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		dept.Employees = append(dept.Employees, record.Parse(data, base, fallback))
	}
}

// readDir lists a directory, treating absence as empty. Other failures
// are recorded as issues. The bool reports whether entries are usable.
func readDir(dir string, res *Result) ([]os.DirEntry, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false
		}
		res.Issues = append(res.Issues, Issue{Path: dir, Reason: fmt.Sprintf("read dir: %v", err)})
		return nil, false
	}
	return entries, true
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// DisplayName converts a directory name into a project display name:
// path separators and hyphens become single spaces.
func DisplayName(dirName string) string {
	name := strings.NewReplacer("/", " ", "\\", " ", "-", " ").Replace(dirName)
	return strings.Join(strings.Fields(name), " ")
}
