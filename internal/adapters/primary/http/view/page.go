package view

import (
	"embed"
	"html/template"

	"salary-predictor-service/internal/config"
	"salary-predictor-service/internal/core/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// PageTemplate is the name the form page is registered under.
const PageTemplate = "index.tmpl"

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.tmpl")
}

type Option struct {
	Value    string
	Selected bool
}

// FormValues are the widget values the page is rendered with.
type FormValues struct {
	Age               int
	Education         []Option
	JobRoles          []Option
	PriorExperience   int
	CurrentExperience int
	TotalExperience   int
}

type Bounds struct {
	MinAge, MaxAge               int
	MinExperience, MaxExperience int
}

type Result struct {
	Salary  string
	Summary []SummaryRow
	Model   string
}

type Page struct {
	Title    string
	Subtitle string
	Footer   string
	Form     FormValues
	Bounds   Bounds
	Result   *Result
	Error    string
}

// NewPage builds the page for q with the given select options. Selections
// not among the options leave every option unselected.
func NewPage(ui config.UIConfig, q domain.EmployeeQuery, education []domain.EducationLevel, roles []domain.JobRole) *Page {
	return &Page{
		Title:    ui.Title,
		Subtitle: ui.Subtitle,
		Footer:   ui.Footer,
		Form: FormValues{
			Age:               q.Age,
			Education:         educationOptions(education, q.Education),
			JobRoles:          jobRoleOptions(roles, q.JobRole),
			PriorExperience:   q.PriorExperience,
			CurrentExperience: q.CurrentExperience,
			TotalExperience:   q.TotalExperience(),
		},
		Bounds: Bounds{
			MinAge:        domain.MinAge,
			MaxAge:        domain.MaxAge,
			MinExperience: domain.MinExperience,
			MaxExperience: domain.MaxExperience,
		},
	}
}

// WithEstimate attaches the salary box and summary panel.
func (p *Page) WithEstimate(ui config.UIConfig, e *domain.SalaryEstimate, model string) *Page {
	p.Result = &Result{
		Salary:  FormatCurrency(ui.CurrencySymbol, e.Amount),
		Summary: Summary(e.Query),
		Model:   model,
	}
	return p
}

func (p *Page) WithError(msg string) *Page {
	p.Error = msg
	return p
}

func educationOptions(levels []domain.EducationLevel, selected domain.EducationLevel) []Option {
	opts := make([]Option, 0, len(levels))
	for _, e := range levels {
		opts = append(opts, Option{Value: string(e), Selected: e == selected})
	}
	return opts
}

func jobRoleOptions(roles []domain.JobRole, selected domain.JobRole) []Option {
	opts := make([]Option, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, Option{Value: string(r), Selected: r == selected})
	}
	return opts
}
