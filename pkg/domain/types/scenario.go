package types

// Scenario is a Shared Socioeconomic Pathway label
type Scenario string

const (
	ScenarioSSP126 Scenario = "SSP1-2.6"
	ScenarioSSP245 Scenario = "SSP2-4.5"
	ScenarioSSP585 Scenario = "SSP5-8.5"
)

// AllScenarios returns all supported scenarios ordered from least to most severe
func AllScenarios() []Scenario {
	return []Scenario{
		ScenarioSSP126,
		ScenarioSSP245,
		ScenarioSSP585,
	}
}

// IsValid checks if the scenario is one of the supported pathways
func (s Scenario) IsValid() bool {
	switch s {
	case ScenarioSSP126,
		ScenarioSSP245,
		ScenarioSSP585:
		return true
	default:
		return false
	}
}

// Severity returns the rank of the scenario, 0 being the mildest. Unknown scenarios return -1.
func (s Scenario) Severity() int {
	for i, sc := range AllScenarios() {
		if sc == s {
			return i
		}
	}
	return -1
}

// String returns the string representation of Scenario
func (s Scenario) String() string {
	return string(s)
}
