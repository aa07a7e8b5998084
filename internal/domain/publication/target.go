package publication

// Strategy names the publication target variant chosen by configuration.
type Strategy string

const (
	// StrategyArtifactory publishes to the fixed third-party registry bucket.
	StrategyArtifactory Strategy = "artifactory"
	// StrategyMaven publishes to a caller-supplied generic Maven registry.
	StrategyMaven Strategy = "maven"
)

// Strategies lists every supported strategy.
func Strategies() []Strategy {
	return []Strategy{StrategyArtifactory, StrategyMaven}
}

// Valid reports whether s names a supported strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyArtifactory, StrategyMaven:
		return true
	default:
		return false
	}
}

// Credentials is the username/password pair presented to the registry.
// A nil field means the value is absent, as opposed to an empty placeholder.
type Credentials struct {
	Username *string `yaml:"username,omitempty" json:"username,omitempty"`
	Password *string `yaml:"password,omitempty" json:"password,omitempty"`
}

// Target describes where and with what credentials an artifact is published.
type Target struct {
	// URL is the registry endpoint. Empty means the local default repository.
	URL string `yaml:"url" json:"url"`
	// RepositoryKey names a bucket inside the registry; empty for generic registries.
	RepositoryKey string `yaml:"repository_key,omitempty" json:"repositoryKey,omitempty"`
	// Credentials presented to the registry.
	Credentials Credentials `yaml:"credentials" json:"credentials"`
}

// IsLocal reports whether the target points at the local default repository.
func (t Target) IsLocal() bool {
	return t.URL == ""
}

// Clone returns a copy that shares no pointers with t.
func (t Target) Clone() Target {
	t.Credentials = Credentials{
		Username: clonePtr(t.Credentials.Username),
		Password: clonePtr(t.Credentials.Password),
	}

	return t
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}

	v := *s

	return &v
}
