package usecase

import "time"

// SetClock replaces the clock used to stamp assessments
func (uc *ProjectionUseCase) SetClock(now func() time.Time) {
	uc.now = now
}

// SanitizeCompanyName is exported for testing
var SanitizeCompanyName = func(name string) string {
	return newRequestValidator().SanitizeCompanyName(name)
}
