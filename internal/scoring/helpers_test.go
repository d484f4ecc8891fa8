package scoring

import "strings"

var developerKeywords = []string{"Python", "Flask", "React", "TypeScript", "SQL", "Git"}

// padTo appends filler words until text has exactly n whitespace-delimited words.
func padTo(text string, n int) string {
	words := strings.Fields(text)
	for len(words) < n {
		words = append(words, "word")
	}
	return strings.Join(words, " ")
}
