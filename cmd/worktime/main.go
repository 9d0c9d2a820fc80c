// cmd/worktime/main.go
//
// Converts a 12-hour working range ("9 AM to 5 PM") to 24-hour notation
// ("09:00 to 17:00"). Malformed input is fatal.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"loanworks/internal/worktime"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("Hours: ")
	if !scanner.Scan() {
		os.Exit(1)
	}
	converted, err := worktime.Convert(strings.TrimSpace(scanner.Text()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(converted)
}
