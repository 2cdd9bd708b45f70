package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salary-predictor-service/internal/config"
	"salary-predictor-service/internal/core/domain"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		symbol string
		amount int64
		want   string
	}{
		{"₹", 612346, "₹ 612,346"},
		{"₹", 1234567, "₹ 1,234,567"},
		{"$", 999, "$ 999"},
		{"₹", 0, "₹ 0"},
		{"", 45000, "45,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.symbol, tt.amount))
	}
}

func TestSummary(t *testing.T) {
	rows := Summary(domain.EmployeeQuery{
		Age:               30,
		Education:         domain.EducationBachelors,
		JobRole:           domain.JobRoleAnalyst,
		PriorExperience:   2,
		CurrentExperience: 3,
	})

	assert.Equal(t, []SummaryRow{
		{"Age", "30"},
		{"Education", "Bachelors"},
		{"Job Role", "Analyst"},
		{"Prior Experience", "2 years"},
		{"Current Experience", "3 years"},
		{"Total Experience", "5 years"},
	}, rows)
}

func TestNewPage_SelectsOptions(t *testing.T) {
	q := domain.DefaultEmployeeQuery()
	q.Education = domain.EducationPhD
	q.JobRole = domain.JobRoleQATester

	p := NewPage(config.UIConfig{Title: "Salary"}, q, domain.EducationLevels, domain.JobRoles)

	var selected []string
	for _, o := range append(p.Form.Education, p.Form.JobRoles...) {
		if o.Selected {
			selected = append(selected, o.Value)
		}
	}
	assert.Equal(t, []string{"PhD", "QA Tester"}, selected)
	assert.Len(t, p.Form.JobRoles, 11)
	assert.Equal(t, 5, p.Form.TotalExperience)
	assert.Nil(t, p.Result)
}

func TestTemplates_RenderEstimate(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	ui := config.UIConfig{Title: "Employee Salary Predictor", CurrencySymbol: "₹", Footer: "demo"}
	q := domain.DefaultEmployeeQuery()
	page := NewPage(ui, q, domain.EducationLevels, domain.JobRoles).WithEstimate(ui, &domain.SalaryEstimate{Query: q, Amount: 612346}, "Random Forest Regressor (100 trees)")

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, page))

	html := buf.String()
	assert.Contains(t, html, "Estimated Salary: ₹ 612,346")
	assert.Contains(t, html, "<strong>Total Experience:</strong> 5 years")
	assert.Contains(t, html, `<option value="Bachelors" selected>`)
	assert.Contains(t, html, "Model powered by Random Forest Regressor (100 trees)")
	assert.Contains(t, html, `<div class="footer">demo</div>`)
}

func TestTemplates_RenderBlankForm(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageTemplate, NewPage(config.UIConfig{Title: "T"}, domain.DefaultEmployeeQuery(), domain.EducationLevels, domain.JobRoles)))

	html := buf.String()
	assert.NotContains(t, html, "salary-box\" id=\"salary\"")
	assert.Contains(t, html, `value="30"`)
	assert.Contains(t, html, `<span id="total_experience">5</span>`)
}
