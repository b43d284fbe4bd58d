package domain

import "strings"

// units covers zero through twenty.
var units = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
}

// tens covers twenty through ninety.
var tens = map[string]int{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// parseNumberWords interprets English number words, including hyphen- or
// space-joined compounds like "twenty-one" and "one hundred five".
func parseNumberWords(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	if len(words) == 0 {
		return 0, false
	}

	current := 0
	seen := false

	for _, w := range words {
		if w == "and" {
			continue
		}
		switch {
		case w == "hundred":
			if current == 0 {
				current = 1
			}
			current *= 100
			seen = true
		case tens[w] != 0:
			current += tens[w]
			seen = true
		default:
			n, ok := units[w]
			if !ok {
				return 0, false
			}
			current += n
			seen = true
		}
	}

	if !seen {
		return 0, false
	}
	return current, true
}
