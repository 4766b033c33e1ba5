package menu

import (
	"fmt"
	"strconv"
	"strings"

	"cvmenu/internal/errors"
)

// Prompt is the single interactive prompt shown after the menu.
const Prompt = "Select option [0-10]: "

// Text is the fixed menu shown before the prompt.
const Text = `CV Generator
============
 1) French CV (HTML)
 2) French CV, anonymized (HTML)
 3) French CV (HTML + PDF)
 4) French CV, anonymized (HTML + PDF)
 5) English CV (HTML)
 6) English CV, anonymized (HTML)
 7) English CV (HTML + PDF)
 8) English CV, anonymized (HTML + PDF)
 9) All versions (HTML)
10) All versions (HTML + PDF)
 0) Exit
`

// ParseChoice interprets one line of input as a menu selection.
func ParseChoice(line string) (Choice, error) {
	trimmed := strings.TrimSpace(line)
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 || n > 10 {
		return 0, errors.NewValidationError(errors.ErrCodeInvalidSelection,
			fmt.Sprintf("invalid option: %q", trimmed), nil)
	}
	return Choice(n), nil
}
