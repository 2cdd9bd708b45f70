package domain

import "fmt"

type EducationLevel string

const (
	EducationBachelors EducationLevel = "Bachelors"
	EducationMasters   EducationLevel = "Masters"
	EducationPhD       EducationLevel = "PhD"
)

// EducationLevels lists the selectable education levels in display order.
var EducationLevels = []EducationLevel{
	EducationBachelors,
	EducationMasters,
	EducationPhD,
}

type JobRole string

const (
	JobRoleAnalyst           JobRole = "Analyst"
	JobRoleEngineer          JobRole = "Engineer"
	JobRoleManager           JobRole = "Manager"
	JobRoleDataScientist     JobRole = "Data Scientist"
	JobRoleSoftwareDeveloper JobRole = "Software Developer"
	JobRoleSystemAdmin       JobRole = "System Admin"
	JobRoleBusinessAnalyst   JobRole = "Business Analyst"
	JobRoleTeamLead          JobRole = "Team Lead"
	JobRoleIntern            JobRole = "Intern"
	JobRoleHR                JobRole = "HR"
	JobRoleQATester          JobRole = "QA Tester"
)

// JobRoles lists the selectable job roles in display order.
var JobRoles = []JobRole{
	JobRoleAnalyst,
	JobRoleEngineer,
	JobRoleManager,
	JobRoleDataScientist,
	JobRoleSoftwareDeveloper,
	JobRoleSystemAdmin,
	JobRoleBusinessAnalyst,
	JobRoleTeamLead,
	JobRoleIntern,
	JobRoleHR,
	JobRoleQATester,
}

// Form widget bounds.
const (
	MinAge        = 18
	MaxAge        = 65
	MinExperience = 0
	MaxExperience = 20
)

// EmployeeQuery is the request-scoped input of a single salary estimate.
type EmployeeQuery struct {
	Age               int            `json:"age"`
	Education         EducationLevel `json:"education"`
	JobRole           JobRole        `json:"job_role"`
	PriorExperience   int            `json:"prior_experience"`
	CurrentExperience int            `json:"current_experience"`
}

// DefaultEmployeeQuery holds the values the form is first rendered with.
func DefaultEmployeeQuery() EmployeeQuery {
	return EmployeeQuery{
		Age:               30,
		Education:         EducationBachelors,
		JobRole:           JobRoleAnalyst,
		PriorExperience:   2,
		CurrentExperience: 3,
	}
}

func (q EmployeeQuery) TotalExperience() int {
	return q.PriorExperience + q.CurrentExperience
}

// Validate enforces the same bounds and option sets the form widgets offer.
func (q EmployeeQuery) Validate() error {
	if q.Age < MinAge || q.Age > MaxAge {
		return fmt.Errorf("%w: got %d", ErrInvalidAge, q.Age)
	}
	if q.PriorExperience < MinExperience || q.PriorExperience > MaxExperience {
		return fmt.Errorf("%w: prior experience %d", ErrInvalidExperience, q.PriorExperience)
	}
	if q.CurrentExperience < MinExperience || q.CurrentExperience > MaxExperience {
		return fmt.Errorf("%w: current experience %d", ErrInvalidExperience, q.CurrentExperience)
	}
	if !q.Education.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEducation, q.Education)
	}
	if !q.JobRole.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidJobRole, q.JobRole)
	}
	return nil
}

func (e EducationLevel) Valid() bool {
	for _, v := range EducationLevels {
		if v == e {
			return true
		}
	}
	return false
}

func (r JobRole) Valid() bool {
	for _, v := range JobRoles {
		if v == r {
			return true
		}
	}
	return false
}
