package resolver

import (
	"errors"
	"fmt"

	"github.com/alcatrazescapee/epsilon-publish/internal/domain/publication"
	"github.com/alcatrazescapee/epsilon-publish/internal/environment"
)

const (
	// ArtifactoryURL is the context URL of the fixed registry.
	ArtifactoryURL = "https://alcatrazescapee.jfrog.io/artifactory"
	// ArtifactoryRepositoryKey is the bucket artifacts are published into.
	ArtifactoryRepositoryKey = "mods"

	// ArtifactoryUsernameVariable holds the fixed registry username.
	ArtifactoryUsernameVariable = "ARTIFACTORY_USERNAME"
	// ArtifactoryPasswordVariable holds the fixed registry password.
	ArtifactoryPasswordVariable = "ARTIFACTORY_PASSWORD"

	// MavenURLVariable holds the generic registry endpoint.
	MavenURLVariable = "MAVEN_URL"
	// MavenUsernameVariable holds the generic registry username.
	MavenUsernameVariable = "MAVEN_USERNAME"
	// MavenPasswordVariable holds the generic registry password.
	MavenPasswordVariable = "MAVEN_PASSWORD"
)

// ErrUnknownStrategy is returned for strategy names no resolver implements.
var ErrUnknownStrategy = errors.New("unknown publication strategy")

// TargetResolver resolves a publication target from an environment snapshot.
type TargetResolver interface {
	// Strategy names the variant this resolver implements.
	Strategy() publication.Strategy
	// Resolve builds the target. It never fails and never reads outside env.
	Resolve(env environment.Snapshot) publication.Target
}

// NewTargetResolver returns the resolver implementing strategy.
//
//nolint:ireturn // Callers select among interchangeable strategies.
func NewTargetResolver(strategy publication.Strategy) (TargetResolver, error) {
	switch strategy {
	case publication.StrategyArtifactory:
		return ArtifactoryResolver{}, nil
	case publication.StrategyMaven:
		return MavenResolver{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// ArtifactoryResolver publishes into a fixed bucket of a fixed registry.
// Unset credentials stay absent.
type ArtifactoryResolver struct{}

// Strategy implements TargetResolver.
func (ArtifactoryResolver) Strategy() publication.Strategy {
	return publication.StrategyArtifactory
}

// Resolve implements TargetResolver.
func (ArtifactoryResolver) Resolve(env environment.Snapshot) publication.Target {
	return publication.Target{
		URL:           ArtifactoryURL,
		RepositoryKey: ArtifactoryRepositoryKey,
		Credentials: publication.Credentials{
			Username: env.Optional(ArtifactoryUsernameVariable),
			Password: env.Optional(ArtifactoryPasswordVariable),
		},
	}
}

// MavenResolver publishes to a caller-supplied registry.
// Unset credentials become visible placeholders so a misconfigured publish
// fails loudly at authentication.
type MavenResolver struct{}

// Strategy implements TargetResolver.
func (MavenResolver) Strategy() publication.Strategy {
	return publication.StrategyMaven
}

// Resolve implements TargetResolver.
func (MavenResolver) Resolve(env environment.Snapshot) publication.Target {
	username := env.GetOr(MavenUsernameVariable, publication.UsernamePlaceholder)
	password := env.GetOr(MavenPasswordVariable, publication.PasswordPlaceholder)

	return publication.Target{
		URL: env.Get(MavenURLVariable),
		Credentials: publication.Credentials{
			Username: &username,
			Password: &password,
		},
	}
}
