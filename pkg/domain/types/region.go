package types

// Region is the geography a company operates in. It is collected with the
// other inputs but does not take part in the hazard calculation.
type Region string

const (
	RegionEurope       Region = "Europe"
	RegionAsia         Region = "Asia"
	RegionNorthAmerica Region = "North America"
	RegionAfrica       Region = "Africa"
)

// AllRegions returns the built-in regions in display order
func AllRegions() []Region {
	return []Region{
		RegionEurope,
		RegionAsia,
		RegionNorthAmerica,
		RegionAfrica,
	}
}

// IsValid checks if the region is one of the built-in regions
func (r Region) IsValid() bool {
	for _, region := range AllRegions() {
		if region == r {
			return true
		}
	}
	return false
}

// String returns the string representation of Region
func (r Region) String() string {
	return string(r)
}
