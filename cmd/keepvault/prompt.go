package main

import (
	"fmt"
	"syscall"

	"golang.org/x/term"
)

// readPassword reads a masked line from the terminal.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// readNewPassword prompts for a password twice and verifies both entries
// match.
func readNewPassword() (string, error) {
	first, err := readPassword("New master password: ")
	if err != nil {
		return "", err
	}
	second, err := readPassword("Confirm master password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", fmt.Errorf("passwords do not match")
	}
	return first, nil
}
