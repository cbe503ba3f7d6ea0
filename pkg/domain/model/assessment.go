package model

import (
	"time"

	"github.com/ecorisk-lab/climatevar/pkg/domain/types"
	"github.com/google/uuid"
)

// AssessmentID identifies one projection run in logs and API responses
type AssessmentID string

// NewAssessmentID generates a new unique AssessmentID
func NewAssessmentID() AssessmentID {
	return AssessmentID(uuid.New().String())
}

// String returns the string representation of AssessmentID
func (id AssessmentID) String() string {
	return string(id)
}

// Assessment is a company's inputs together with the projection derived from them.
// Region is carried through for display only.
type Assessment struct {
	ID             AssessmentID
	CompanyName    string `masq:"secret"`
	Sector         types.Sector
	Region         types.Region
	Scenario       types.Scenario
	Emissions      EmissionsInput
	TotalEmissions float64
	Projection     *ProjectionResult
	CreatedAt      time.Time
}
