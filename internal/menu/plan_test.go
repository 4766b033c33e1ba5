package menu

import (
	"reflect"
	"testing"

	"cvmenu/internal/errors"
)

func TestResolveSingleChoices(t *testing.T) {
	tests := []struct {
		name           string
		choice         Choice
		hasCredentials bool
		expectError    bool
		expectedCode   string
		expectedFlags  []string
	}{
		{
			name:          "choice 1 - plain french",
			choice:        1,
			expectedFlags: nil,
		},
		{
			name:          "choice 2 - anonymized",
			choice:        2,
			expectedFlags: []string{"--anonymize"},
		},
		{
			name:          "choice 3 - pdf",
			choice:        3,
			expectedFlags: []string{"--pdf"},
		},
		{
			name:          "choice 4 - anonymized pdf",
			choice:        4,
			expectedFlags: []string{"--anonymize", "--pdf"},
		},
		{
			name:           "choice 1 ignores missing credentials",
			choice:         1,
			hasCredentials: false,
			expectedFlags:  nil,
		},
		{
			name:           "choice 4 ignores present credentials",
			choice:         4,
			hasCredentials: true,
			expectedFlags:  []string{"--anonymize", "--pdf"},
		},
		{
			name:           "choice 5 - translated",
			choice:         5,
			hasCredentials: true,
			expectedFlags:  []string{"--translate"},
		},
		{
			name:           "choice 6 - translated anonymized",
			choice:         6,
			hasCredentials: true,
			expectedFlags:  []string{"--translate", "--anonymize"},
		},
		{
			name:           "choice 7 - translated pdf",
			choice:         7,
			hasCredentials: true,
			expectedFlags:  []string{"--translate", "--pdf"},
		},
		{
			name:           "choice 8 - translated anonymized pdf",
			choice:         8,
			hasCredentials: true,
			expectedFlags:  []string{"--translate", "--anonymize", "--pdf"},
		},
		{
			name:         "choice 5 without credentials",
			choice:       5,
			expectError:  true,
			expectedCode: errors.ErrCodeMissingAPIKey,
		},
		{
			name:         "choice 6 without credentials",
			choice:       6,
			expectError:  true,
			expectedCode: errors.ErrCodeMissingAPIKey,
		},
		{
			name:         "choice 7 without credentials",
			choice:       7,
			expectError:  true,
			expectedCode: errors.ErrCodeMissingAPIKey,
		},
		{
			name:         "choice 8 without credentials",
			choice:       8,
			expectError:  true,
			expectedCode: errors.ErrCodeMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Resolve(tt.choice, tt.hasCredentials)

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error but got none")
				}
				appErr, ok := err.(*errors.AppError)
				if !ok {
					t.Fatalf("Expected *errors.AppError, got %T", err)
				}
				if appErr.Code != tt.expectedCode {
					t.Errorf("Expected error code %s, got %s", tt.expectedCode, appErr.Code)
				}
				if len(plan.Invocations) != 0 {
					t.Errorf("Expected no invocations on error, got %d", len(plan.Invocations))
				}
				return
			}

			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if len(plan.Invocations) != 1 {
				t.Fatalf("Expected exactly 1 invocation, got %d", len(plan.Invocations))
			}
			if !reflect.DeepEqual(plan.Invocations[0].Flags, tt.expectedFlags) {
				t.Errorf("Expected flags %v, got %v", tt.expectedFlags, plan.Invocations[0].Flags)
			}
			if plan.Warning != "" {
				t.Errorf("Expected no warning for single choice, got %q", plan.Warning)
			}
		})
	}
}

func TestResolveBulkChoices(t *testing.T) {
	tests := []struct {
		name           string
		choice         Choice
		hasCredentials bool
		expectWarning  bool
		expectedFlags  [][]string
	}{
		{
			name:           "choice 9 with credentials",
			choice:         9,
			hasCredentials: true,
			expectedFlags: [][]string{
				nil,
				{"--anonymize"},
				{"--translate"},
				{"--translate", "--anonymize"},
			},
		},
		{
			name:          "choice 9 without credentials",
			choice:        9,
			expectWarning: true,
			expectedFlags: [][]string{
				nil,
				{"--anonymize"},
			},
		},
		{
			name:           "choice 10 with credentials",
			choice:         10,
			hasCredentials: true,
			expectedFlags: [][]string{
				{"--pdf"},
				{"--anonymize", "--pdf"},
				{"--translate", "--pdf"},
				{"--translate", "--anonymize", "--pdf"},
			},
		},
		{
			name:          "choice 10 without credentials",
			choice:        10,
			expectWarning: true,
			expectedFlags: [][]string{
				{"--pdf"},
				{"--anonymize", "--pdf"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Resolve(tt.choice, tt.hasCredentials)
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}

			if len(plan.Invocations) != len(tt.expectedFlags) {
				t.Fatalf("Expected %d invocations, got %d", len(tt.expectedFlags), len(plan.Invocations))
			}
			for i, expected := range tt.expectedFlags {
				if !reflect.DeepEqual(plan.Invocations[i].Flags, expected) {
					t.Errorf("Invocation %d: expected flags %v, got %v", i, expected, plan.Invocations[i].Flags)
				}
			}

			if tt.expectWarning && plan.Warning == "" {
				t.Error("Expected degraded-mode warning, got none")
			}
			if !tt.expectWarning && plan.Warning != "" {
				t.Errorf("Expected no warning, got %q", plan.Warning)
			}
		})
	}
}

func TestResolveExitAndInvalid(t *testing.T) {
	plan, err := Resolve(ChoiceExit, false)
	if err != nil {
		t.Fatalf("Expected no error for exit choice, got: %v", err)
	}
	if len(plan.Invocations) != 0 {
		t.Errorf("Expected empty plan for exit choice, got %d invocations", len(plan.Invocations))
	}

	for _, choice := range []Choice{-1, 11, 42} {
		_, err := Resolve(choice, true)
		if err == nil {
			t.Errorf("Expected error for out-of-range choice %d", choice)
			continue
		}
		appErr, ok := err.(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeInvalidSelection {
			t.Errorf("Expected INVALID_SELECTION for choice %d, got %v", choice, err)
		}
	}
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Choice
		expectError bool
	}{
		{name: "plain digit", input: "3", expected: 3},
		{name: "with newline", input: "7\n", expected: 7},
		{name: "with surrounding spaces", input: "  10 \n", expected: 10},
		{name: "zero", input: "0", expected: 0},
		{name: "word", input: "three", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "blank line", input: "\n", expectError: true},
		{name: "negative", input: "-2", expectError: true},
		{name: "too large", input: "11", expectError: true},
		{name: "trailing text", input: "3 please", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			choice, err := ParseChoice(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error but got choice %d", choice)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}
			if choice != tt.expected {
				t.Errorf("Expected choice %d, got %d", tt.expected, choice)
			}
		})
	}
}

func TestBuildInvocationLabels(t *testing.T) {
	tests := []struct {
		translate, anonymize, pdf bool
		expected                  string
	}{
		{false, false, false, "French CV (HTML)"},
		{false, true, false, "French CV, anonymized (HTML)"},
		{true, false, true, "English CV (HTML + PDF)"},
		{true, true, true, "English CV, anonymized (HTML + PDF)"},
	}

	for _, tt := range tests {
		inv := BuildInvocation(tt.translate, tt.anonymize, tt.pdf)
		if inv.Label != tt.expected {
			t.Errorf("Expected label %q, got %q", tt.expected, inv.Label)
		}
	}
}

// Benchmark to ensure plan resolution stays allocation-cheap
func BenchmarkResolve(b *testing.B) {
	b.Run("single choice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Resolve(4, false)
		}
	})

	b.Run("bulk choice", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Resolve(10, true)
		}
	})
}
