package usecase

import (
	"github.com/ecorisk-lab/climatevar/pkg/domain/model"
)

type UseCases struct {
	hazard     *model.HazardTable
	Projection *ProjectionUseCase
}

type Option func(*UseCases)

func WithHazardTable(table *model.HazardTable) Option {
	return func(uc *UseCases) {
		uc.hazard = table
	}
}

func New(opts ...Option) *UseCases {
	uc := &UseCases{
		hazard: model.DefaultHazardTable(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Projection = NewProjectionUseCase(uc.hazard)

	return uc
}
