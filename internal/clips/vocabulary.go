// Package clips provides the spoken-number clip library and its loaders.
package clips

import "strconv"

// Vocabulary returns the 35 clip names a complete announcement set needs:
// ones 1-9, the irregular teens 10-19, tens 20-90, hundreds 100-900, and
// the "and" connective.
func Vocabulary() []string {
	names := make([]string, 0, 35)
	for i := 1; i <= 9; i++ {
		names = append(names, strconv.Itoa(i))
	}
	for i := 10; i <= 19; i++ {
		names = append(names, strconv.Itoa(i))
	}
	for i := 20; i <= 90; i += 10 {
		names = append(names, strconv.Itoa(i))
	}
	for i := 100; i <= 900; i += 100 {
		names = append(names, strconv.Itoa(i))
	}
	names = append(names, "and")
	return names
}
