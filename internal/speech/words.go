// Package speech turns an integer score into the spoken-clip sequence a
// human announcer would use and drives playback.
package speech

import "strconv"

// ClipsFor decomposes a score in [100, 999] into clip names in spoken order:
// hundreds, the "and" connective, then tens and ones. The teens (10-19) have
// irregular names and are emitted as a single clip rather than tens+ones.
//
// The result never holds more than three number clips plus one "and".
func ClipsFor(score int) []string {
	hundreds := score / 100 * 100
	remainder := score % 100
	tens := remainder / 10 * 10
	ones := remainder % 10

	names := make([]string, 0, 4)

	if hundreds > 0 {
		names = append(names, strconv.Itoa(hundreds))
	}
	if remainder > 0 {
		names = append(names, "and")
	}

	switch {
	case remainder >= 20:
		names = append(names, strconv.Itoa(tens))
		if ones > 0 {
			names = append(names, strconv.Itoa(ones))
		}
	case remainder >= 10:
		names = append(names, strconv.Itoa(remainder))
	case ones > 0:
		names = append(names, strconv.Itoa(ones))
	}

	return names
}
