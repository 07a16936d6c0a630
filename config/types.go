package config

type ContextSelection struct {
	Name string
}

const (
	ContextFileEnvVar         = "HALBIND_CONTEXTS_FILE"
	APIKeyEnvVar              = "HALBIND_API_KEY"
	DefaultContextCatalogPath = "~/.halbind/contexts.yaml"

	DefaultAPIBaseURL     = "https://api.w3.org"
	DefaultProfileBaseURL = "https://www.w3.org/users/"
	DefaultTimeoutSeconds = 30
)

type ContextCatalog struct {
	Contexts   []Context `yaml:"contexts"`
	CurrentCtx string    `yaml:"current-ctx"`
}

type Context struct {
	Name string `yaml:"name"`
	API  API    `yaml:"api"`
}

// API describes one hypermedia endpoint: where it lives, the static
// credential appended to every request, and the profile URL prefix used to
// synthesize links for user-typed entities.
type API struct {
	BaseURL        string            `yaml:"base-url"`
	APIKey         string            `yaml:"api-key,omitempty"`
	ProfileBaseURL string            `yaml:"profile-base-url,omitempty"`
	DefaultHeaders map[string]string `yaml:"default-headers,omitempty"`
	TimeoutSeconds int               `yaml:"timeout-seconds,omitempty"`
}

func (a API) EffectiveBaseURL() string {
	if a.BaseURL != "" {
		return a.BaseURL
	}
	return DefaultAPIBaseURL
}

func (a API) EffectiveProfileBaseURL() string {
	if a.ProfileBaseURL != "" {
		return a.ProfileBaseURL
	}
	return DefaultProfileBaseURL
}

func (a API) EffectiveTimeoutSeconds() int {
	if a.TimeoutSeconds > 0 {
		return a.TimeoutSeconds
	}
	return DefaultTimeoutSeconds
}
