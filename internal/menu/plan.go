package menu

import (
	"fmt"

	"cvmenu/internal/config"
	"cvmenu/internal/errors"
)

// Choice is one numeric menu selection in the closed range [0,10].
type Choice int

// ChoiceExit terminates the menu without running anything.
const ChoiceExit Choice = 0

// Invocation is one run of the external generator: the ordered flag set
// appended to the fixed input argument.
type Invocation struct {
	Label string
	Flags []string
}

// Plan is the ordered work resolved from one menu choice.
type Plan struct {
	Choice      Choice
	Invocations []Invocation
	Warning     string // degraded-mode notice, printed before any invocation
}

// BuildInvocation composes generator flags in their canonical order.
func BuildInvocation(translate, anonymize, pdf bool) Invocation {
	var flags []string
	label := "French CV"
	if translate {
		flags = append(flags, "--translate")
		label = "English CV"
	}
	if anonymize {
		flags = append(flags, "--anonymize")
		label += ", anonymized"
	}
	output := "HTML"
	if pdf {
		flags = append(flags, "--pdf")
		output = "HTML + PDF"
	}
	return Invocation{
		Label: fmt.Sprintf("%s (%s)", label, output),
		Flags: flags,
	}
}

// MissingAPIKeyError explains how to enable translation-dependent choices.
func MissingAPIKeyError() *errors.AppError {
	return errors.NewCapabilityError(errors.ErrCodeMissingAPIKey,
		fmt.Sprintf("translation requires an API key: set %s or %s and retry",
			config.EnvGeminiAPIKey, config.EnvGoogleAPIKey), nil)
}

// degradedWarning is printed when a bulk choice runs without credentials.
var degradedWarning = fmt.Sprintf("Warning: no API key set (%s or %s), skipping English versions",
	config.EnvGeminiAPIKey, config.EnvGoogleAPIKey)

// Resolve maps a choice to its invocations. Translation-only choices fail
// without credentials; bulk choices degrade to the French-only combinations
// with a warning. Choice 0 resolves to an empty plan.
func Resolve(choice Choice, hasCredentials bool) (Plan, error) {
	plan := Plan{Choice: choice}

	switch choice {
	case ChoiceExit:
		return plan, nil

	case 1, 2, 3, 4:
		anonymize := choice == 2 || choice == 4
		pdf := choice == 3 || choice == 4
		plan.Invocations = []Invocation{BuildInvocation(false, anonymize, pdf)}

	case 5, 6, 7, 8:
		if !hasCredentials {
			return Plan{}, MissingAPIKeyError()
		}
		anonymize := choice == 6 || choice == 8
		pdf := choice == 7 || choice == 8
		plan.Invocations = []Invocation{BuildInvocation(true, anonymize, pdf)}

	case 9, 10:
		pdf := choice == 10
		plan.Invocations = []Invocation{
			BuildInvocation(false, false, pdf),
			BuildInvocation(false, true, pdf),
		}
		if hasCredentials {
			plan.Invocations = append(plan.Invocations,
				BuildInvocation(true, false, pdf),
				BuildInvocation(true, true, pdf),
			)
		} else {
			plan.Warning = degradedWarning
		}

	default:
		return Plan{}, errors.NewValidationError(errors.ErrCodeInvalidSelection,
			fmt.Sprintf("invalid option: %d", choice), nil)
	}

	return plan, nil
}
