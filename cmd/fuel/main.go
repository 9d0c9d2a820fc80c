// cmd/fuel/main.go
//
// Reads fractions like "3/4" until one parses, then prints the gauge
// reading: E near empty, F near full, the percentage in between.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"loanworks/internal/fuel"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Fraction: ")
		if !scanner.Scan() {
			os.Exit(1)
		}
		percentage, err := fuel.Convert(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}
		fmt.Println(fuel.Gauge(percentage))
		return
	}
}
