package cli

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrNoChoices is returned by Select when there is nothing to choose from.
var ErrNoChoices = errors.New("no choices given")

// Select asks the user to pick one of choices on the terminal. Typing filters
// the list by prefix.
func Select(label string, choices ...string) (string, error) {
	if len(choices) == 0 {
		return "", ErrNoChoices
	}

	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(choices[index], strings.ToLower(input))
		},
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}
