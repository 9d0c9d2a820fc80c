// Package words turns numbers and lists into English prose.
//
// Two jobs live here: spelling out cardinal numbers ("five hundred
// twenty-five thousand, six hundred") and joining name lists with a serial
// comma ("Ron, Hermione, and Harry"). Both are exact-output transformations,
// so the grammar rules are spelled out in code rather than pulled from a
// library.
package words

import "strings"

var ones = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tens = []string{
	"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// Scale names for each group of three digits, smallest first.
var scales = []string{"", " thousand", " million", " billion", " trillion", " quadrillion", " quintillion"}

// Cardinal spells n out in English. Groups of three digits are joined with
// a comma and a space, tens and units are hyphenated, and there is no "and":
// 1440 becomes "one thousand, four hundred forty".
func Cardinal(n int64) string {
	if n == 0 {
		return ones[0]
	}
	// Work on the magnitude as a uint64 so math.MinInt64, which has no
	// int64 negation, still spells out correctly.
	negative := n < 0
	u := uint64(n)
	if negative {
		u = -u
	}

	// Split into groups of three digits, smallest group first.
	var groups []int
	for u > 0 {
		groups = append(groups, int(u%1000))
		u /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		parts = append(parts, smallCardinal(groups[i])+scales[i])
	}

	phrase := strings.Join(parts, ", ")
	if negative {
		phrase = "negative " + phrase
	}
	return phrase
}

// smallCardinal spells out 1..999.
func smallCardinal(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, ones[n/100]+" hundred")
		n %= 100
	}
	switch {
	case n == 0:
	case n < 20:
		parts = append(parts, ones[n])
	default:
		word := tens[n/10]
		if n%10 != 0 {
			word += "-" + ones[n%10]
		}
		parts = append(parts, word)
	}
	return strings.Join(parts, " ")
}

// JoinAnd joins names the way a farewell reads aloud: "A", "A and B",
// "A, B, and C" (serial comma from three names up).
func JoinAnd(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
}
