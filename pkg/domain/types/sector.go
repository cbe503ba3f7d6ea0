package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Sector is the industry sector a company is assessed under
type Sector string

const (
	SectorEnergy        Sector = "Energy"
	SectorManufacturing Sector = "Manufacturing"
	SectorRealEstate    Sector = "Real Estate"
	SectorFinance       Sector = "Finance"
)

// AllSectors returns the built-in sectors in display order
func AllSectors() []Sector {
	return []Sector{
		SectorEnergy,
		SectorManufacturing,
		SectorRealEstate,
		SectorFinance,
	}
}

// Validate checks that the sector is a usable key. Whether hazard data exists
// for it is decided by the hazard table, not here.
func (s Sector) Validate() error {
	if s == "" {
		return goerr.New("sector cannot be empty")
	}
	if strings.TrimSpace(string(s)) != string(s) {
		return goerr.New("sector must not have surrounding spaces", goerr.V("sector", s))
	}
	return nil
}

// String returns the string representation of Sector
func (s Sector) String() string {
	return string(s)
}
