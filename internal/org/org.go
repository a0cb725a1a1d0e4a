// Package org defines the in-memory model for an on-disk AI staff
// workspace: a roster of projects, the departments inside each project,
// and the employees filed under each department.
package org

import "strings"

// DepartmentTag is the canonical department a directory name maps to.
type DepartmentTag string

const (
	DepartmentPlanning    DepartmentTag = "planning"
	DepartmentDesign      DepartmentTag = "design"
	DepartmentDevelopment DepartmentTag = "development"
	DepartmentQA          DepartmentTag = "qa"
	DepartmentMarketing   DepartmentTag = "marketing"

	// DepartmentGeneral is the fallback tag for directory names that
	// match no known department.
	DepartmentGeneral DepartmentTag = "general"
)

// ParseDepartmentTag maps a raw directory name to a canonical tag.
// Unrecognized names yield DepartmentGeneral; the mapping never fails.
func ParseDepartmentTag(name string) DepartmentTag {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "planning":
		return DepartmentPlanning
	case "design":
		return DepartmentDesign
	case "development":
		return DepartmentDevelopment
	case "qa":
		return DepartmentQA
	case "marketing":
		return DepartmentMarketing
	default:
		return DepartmentGeneral
	}
}

// AgentType identifies which coding agent backs an employee.
type AgentType string

const (
	AgentClaude  AgentType = "claude"
	AgentCodex   AgentType = "codex"
	AgentGemini  AgentType = "gemini"
	AgentCopilot AgentType = "copilot"
	AgentAider   AgentType = "aider"
)

// DefaultAgentType is assumed when a record does not declare an agent.
const DefaultAgentType = AgentClaude

// ParseAgentType reports the canonical agent type for a raw value and
// whether the value belongs to the known set.
func ParseAgentType(value string) (AgentType, bool) {
	switch tag := AgentType(strings.ToLower(strings.TrimSpace(value))); tag {
	case AgentClaude, AgentCodex, AgentGemini, AgentCopilot, AgentAider:
		return tag, true
	default:
		return "", false
	}
}

// Portrait trait index ranges. Each trait is a palette index rendered by
// the host application.
const (
	SkinToneCount  = 6
	HairStyleCount = 8
	AccessoryCount = 4

	// AccessoryGlasses is the fixed accessory slot assigned when a
	// record mentions glasses.
	AccessoryGlasses = 2
)

// Traits describes an employee's generated portrait.
type Traits struct {
	Skin      int `yaml:"skin"`
	Hair      int `yaml:"hair"`
	Accessory int `yaml:"accessory"`
}

// Employee is one staff record. Name is the identity within a department.
type Employee struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	AgentType AgentType `yaml:"agent"`
	Traits    Traits    `yaml:"traits"`
}

// Department groups the employees filed under one classified directory.
// A project holds at most one department per tag.
type Department struct {
	Tag       DepartmentTag `yaml:"tag"`
	Employees []*Employee   `yaml:"employees,omitempty"`
}

// FindEmployee returns the employee with the exact name, or nil.
func (d *Department) FindEmployee(name string) *Employee {
	for _, emp := range d.Employees {
		if emp.Name == name {
			return emp
		}
	}
	return nil
}

// AddEmployee appends an employee to the department.
func (d *Department) AddEmployee(emp *Employee) {
	d.Employees = append(d.Employees, emp)
}

// StatusPlanning is the status assigned to newly discovered projects.
const StatusPlanning = "planning"

// Project is a top-level organizational unit. Name is the identity
// within the roster.
type Project struct {
	Name        string        `yaml:"name"`
	Status      string        `yaml:"status"`
	Departments []*Department `yaml:"departments,omitempty"`
}

// Department returns the department with the given tag, or nil.
func (p *Project) Department(tag DepartmentTag) *Department {
	for _, dept := range p.Departments {
		if dept.Tag == tag {
			return dept
		}
	}
	return nil
}

// EnsureDepartment returns the department with the given tag, creating
// it if the project does not have one yet.
func (p *Project) EnsureDepartment(tag DepartmentTag) *Department {
	if dept := p.Department(tag); dept != nil {
		return dept
	}
	dept := &Department{Tag: tag}
	p.Departments = append(p.Departments, dept)
	return dept
}

// Roster is the root collection of all projects. It is shared mutable
// state: callers must serialize reconciliation passes against it.
type Roster struct {
	Projects []*Project `yaml:"projects,omitempty"`
}

// FindProject returns the project with the exact display name, or nil.
func (r *Roster) FindProject(name string) *Project {
	for _, project := range r.Projects {
		if project.Name == name {
			return project
		}
	}
	return nil
}

// AddProject appends a project to the roster.
func (r *Roster) AddProject(project *Project) {
	r.Projects = append(r.Projects, project)
}
