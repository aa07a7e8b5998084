package resolver

import "github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"

// Variable documents one environment variable read during resolution.
type Variable struct {
	// Name of the environment variable.
	Name string
	// Strategy is the target variant reading it; empty for all strategies.
	Strategy publication.Strategy
	// Fallback describes the value used when the variable is unset.
	Fallback string
}

// Variables lists every variable consumed by the resolvers.
func Variables() []Variable {
	return []Variable{
		{Name: VersionVariable, Fallback: DefaultVersion},
		{Name: ArtifactoryUsernameVariable, Strategy: publication.StrategyArtifactory, Fallback: publication.AbsentMarker},
		{Name: ArtifactoryPasswordVariable, Strategy: publication.StrategyArtifactory, Fallback: publication.AbsentMarker},
		{Name: MavenURLVariable, Strategy: publication.StrategyMaven, Fallback: `""`},
		{Name: MavenUsernameVariable, Strategy: publication.StrategyMaven, Fallback: publication.UsernamePlaceholder},
		{Name: MavenPasswordVariable, Strategy: publication.StrategyMaven, Fallback: publication.PasswordPlaceholder},
	}
}
