package config

import "os"

// Environment variables the generator recognizes for translation. Either
// being non-empty enables the translation-dependent menu choices.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGoogleAPIKey = "GOOGLE_API_KEY"
)

// Credentials holds the translation capability, resolved once at startup
// and passed explicitly into dispatch instead of read per branch.
type Credentials struct {
	APIKey string
	Source string // name of the environment variable the key came from
}

// HasAPIKey reports whether translation-dependent choices may proceed.
func (c Credentials) HasAPIKey() bool {
	return c.APIKey != ""
}

// ResolveCredentials reads the recognized environment variables in
// precedence order.
func ResolveCredentials() Credentials {
	for _, name := range []string{EnvGeminiAPIKey, EnvGoogleAPIKey} {
		if value := os.Getenv(name); value != "" {
			return Credentials{APIKey: value, Source: name}
		}
	}
	return Credentials{}
}
