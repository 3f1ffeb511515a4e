// Package utils holds small helpers that have no better home.
package utils

import "fmt"

// CollatzCount returns the number of Collatz steps from n down to 1.
func CollatzCount(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("collatz count is only defined for positive integers, got %d", n)
	}

	count := 0
	for n != 1 {
		count++
		if n%2 == 0 {
			n /= 2
		} else {
			n = n*3 + 1
		}
	}

	return count, nil
}
