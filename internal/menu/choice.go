package menu

import (
	"errors"
	"strconv"
	"strings"
)

const categoryLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	// ErrChoiceCancelled is returned for the "0" answer.
	ErrChoiceCancelled = errors.New("menu: choice cancelled")
	// ErrInvalidChoice is returned for anything that does not name an entry.
	ErrInvalidChoice = errors.New("menu: invalid choice")
)

// CategoryLabel returns the selector shown next to the i-th category:
// letters while they last, then 1-based numbers.
func CategoryLabel(i int) string {
	if i >= 0 && i < len(categoryLetters) {
		return string(categoryLetters[i])
	}
	return strconv.Itoa(i + 1)
}

// ParseCategoryChoice maps user input to an index among n categories.
// Letters are case-insensitive; numbers are 1-based.
func ParseCategoryChoice(input string, n int) (int, error) {
	choice := strings.ToUpper(strings.TrimSpace(input))
	if choice == "0" {
		return 0, ErrChoiceCancelled
	}
	if len(choice) == 1 {
		if idx := strings.Index(categoryLetters, choice); idx >= 0 {
			if idx < n {
				return idx, nil
			}
			return 0, ErrInvalidChoice
		}
	}
	return parseNumbered(choice, n)
}

// ParseItemChoice maps a 1-based dish number to an index among n items.
// "0" skips.
func ParseItemChoice(input string, n int) (int, error) {
	choice := strings.TrimSpace(input)
	if choice == "0" {
		return 0, ErrChoiceCancelled
	}
	return parseNumbered(choice, n)
}

func parseNumbered(choice string, n int) (int, error) {
	num, err := strconv.Atoi(choice)
	if err != nil || num < 1 || num > n {
		return 0, ErrInvalidChoice
	}
	return num - 1, nil
}
