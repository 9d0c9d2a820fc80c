// cmd/ipcheck/main.go
//
// Reads one line and reports whether it is a valid dotted-quad IPv4
// address.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"loanworks/internal/ipaddr"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("IPv4 address: ")
	if !scanner.Scan() {
		os.Exit(1)
	}
	fmt.Println(ipaddr.Validate(strings.TrimSpace(scanner.Text())))
}
