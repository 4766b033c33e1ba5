package config

import "testing"

func TestResolveCredentials(t *testing.T) {
	tests := []struct {
		name           string
		geminiKey      string
		googleKey      string
		expectGate     bool
		expectedSource string
	}{
		{
			name: "neither set",
		},
		{
			name:           "gemini key set",
			geminiKey:      "gm-123",
			expectGate:     true,
			expectedSource: EnvGeminiAPIKey,
		},
		{
			name:           "google key set",
			googleKey:      "gg-456",
			expectGate:     true,
			expectedSource: EnvGoogleAPIKey,
		},
		{
			name:           "gemini takes precedence",
			geminiKey:      "gm-123",
			googleKey:      "gg-456",
			expectGate:     true,
			expectedSource: EnvGeminiAPIKey,
		},
		{
			name:      "empty values do not satisfy the gate",
			geminiKey: "",
			googleKey: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvGeminiAPIKey, tt.geminiKey)
			t.Setenv(EnvGoogleAPIKey, tt.googleKey)

			creds := ResolveCredentials()
			if creds.HasAPIKey() != tt.expectGate {
				t.Errorf("Expected HasAPIKey=%t, got %t", tt.expectGate, creds.HasAPIKey())
			}
			if creds.Source != tt.expectedSource {
				t.Errorf("Expected source %q, got %q", tt.expectedSource, creds.Source)
			}
		})
	}
}
