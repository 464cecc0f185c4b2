// Package version tracks the application release: the running version, the
// newest published one, and the comparison between them.
package version

import (
	"fmt"
	"strings"
)

// Compare orders two semantic version strings: 1 when a is newer, -1 when b
// is newer, 0 when they are equal. A leading v is accepted on either side.
func Compare(a, b string) (int, error) {
	parse := func(s string) (parts [3]int, err error) {
		_, err = fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &parts[0], &parts[1], &parts[2])
		return parts, err
	}

	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for i := range av {
		if av[i] == bv[i] {
			continue
		}
		if av[i] > bv[i] {
			return 1, nil
		}
		return -1, nil
	}

	return 0, nil
}
