// cmd/adieu/main.go
//
// Reads names, one per line, until end of input, then bids them all
// farewell in one sentence with a serial comma.

package main

import (
	"bufio"
	"fmt"
	"os"

	"loanworks/internal/words"
)

func main() {
	var names []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		names = append(names, scanner.Text())
	}
	fmt.Printf("Adieu, adieu, to %s\n", words.JoinAnd(names))
}
