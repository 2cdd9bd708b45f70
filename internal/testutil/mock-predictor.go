package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPredictor is a mock of ports.Predictor.
type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Predict(ctx context.Context, features []float64) (float64, error) {
	args := m.Called(ctx, features)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockPredictor) Describe() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPredictor) NumFeatures() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockPredictor) Close() error {
	args := m.Called()
	return args.Error(0)
}

// FullColumns is a manifest with an indicator for every form option.
var FullColumns = []string{
	"Age", "Prior_Exp", "Current_Exp", "Total_Exp",
	"Education_Bachelors", "Education_Masters", "Education_PhD",
	"Job_Role_Analyst", "Job_Role_Business Analyst", "Job_Role_Data Scientist",
	"Job_Role_Engineer", "Job_Role_HR", "Job_Role_Intern", "Job_Role_Manager",
	"Job_Role_QA Tester", "Job_Role_Software Developer", "Job_Role_System Admin",
	"Job_Role_Team Lead",
}

// DropFirstColumns is a manifest produced by one-hot encoding with the first
// category of each field dropped, so Bachelors and Analyst have no column.
var DropFirstColumns = []string{
	"Age", "Prior_Exp", "Current_Exp", "Total_Exp",
	"Education_Masters", "Education_PhD",
	"Job_Role_Business Analyst", "Job_Role_Data Scientist",
	"Job_Role_Engineer", "Job_Role_HR", "Job_Role_Intern", "Job_Role_Manager",
	"Job_Role_QA Tester", "Job_Role_Software Developer", "Job_Role_System Admin",
	"Job_Role_Team Lead",
}
