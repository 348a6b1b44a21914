package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/ssh/terminal"
)

func input(prompt string) string {
	fmt.Printf("%s: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return strings.TrimSpace(scanner.Text())
}

// confirm asks the user to confirm a destructive action.
// It always succeeds if stdin is not a terminal.
func confirm(prompt string) bool {
	if !terminal.IsTerminal(int(os.Stdin.Fd())) {
		return true
	}
	answer := strings.ToLower(input(prompt + " [y/N]"))
	return answer == "y" || answer == "yes"
}

func parseChar(str string) (rune, error) {
	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError || size != len(str) {
		return 0, fmt.Errorf("'%s' is not a single character", str)
	}
	return r, nil
}

// optionalArg returns args[i] or nil if there are not enough arguments.
func optionalArg(args []string, i int) *string {
	if i >= len(args) {
		return nil
	}
	return &args[i]
}
