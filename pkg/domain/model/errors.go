package model

import "github.com/m-mizutani/goerr/v2"

// Projection errors
var (
	ErrInvalidInput    = goerr.New("invalid input")
	ErrUnknownCategory = goerr.New("no hazard data for combination")
	ErrInvalidHazard   = goerr.New("invalid hazard table")
)

// Context keys for error values
const (
	SectorKey    = "sector"
	ScenarioKey  = "scenario"
	EmissionsKey = "emissions"
)
