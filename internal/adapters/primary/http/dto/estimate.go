package dto

import "salary-predictor-service/internal/core/domain"

// EstimateForm is the urlencoded body posted by the salary form
type EstimateForm struct {
	Age               int    `form:"age" binding:"min=18,max=65"`
	Education         string `form:"education" binding:"required"`
	JobRole           string `form:"job_role" binding:"required"`
	PriorExperience   int    `form:"prior_experience" binding:"min=0,max=20"`
	CurrentExperience int    `form:"current_experience" binding:"min=0,max=20"`
}

func (f EstimateForm) ToQuery() domain.EmployeeQuery {
	return domain.EmployeeQuery{
		Age:               f.Age,
		Education:         domain.EducationLevel(f.Education),
		JobRole:           domain.JobRole(f.JobRole),
		PriorExperience:   f.PriorExperience,
		CurrentExperience: f.CurrentExperience,
	}
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status   string `json:"status"`
	Model    string `json:"model,omitempty"`
	Features int    `json:"features,omitempty"`
	Error    string `json:"error,omitempty"`
}
