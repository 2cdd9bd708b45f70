package services

import "salary-predictor-service/internal/core/domain"

// BuildFeatureVector lays out a query according to the manifest.
// Every slot starts at zero. Numeric fields are written by column name and
// the education and job role indicators are set to 1 only when the manifest
// knows the synthesized column; unknown columns are skipped without error.
func BuildFeatureVector(manifest *domain.ColumnManifest, q domain.EmployeeQuery) domain.FeatureVector {
	features := make(domain.FeatureVector, manifest.Len())

	set := func(column string, value float64) {
		if i, ok := manifest.Index(column); ok {
			features[i] = value
		}
	}

	set(domain.ColumnAge, float64(q.Age))
	set(domain.ColumnPriorExperience, float64(q.PriorExperience))
	set(domain.ColumnCurrentExperience, float64(q.CurrentExperience))
	set(domain.ColumnTotalExperience, float64(q.TotalExperience()))

	set(domain.EducationColumn(q.Education), 1)
	set(domain.JobRoleColumn(q.JobRole), 1)

	return features
}
