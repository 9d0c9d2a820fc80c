// cmd/seasons/main.go
//
// Asks for a date of birth and prints the age in minutes, spelled out in
// English. Bad dates and dates in the future are fatal.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"loanworks/internal/seasons"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Date of Birth: ")
	if !scanner.Scan() {
		os.Exit(1)
	}
	born, err := time.Parse("2006-01-02", strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Fprintln(os.Stderr, "seasons: expected a date in YYYY-MM-DD form")
		os.Exit(1)
	}
	phrase, err := seasons.Phrase(born, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(phrase)
}
