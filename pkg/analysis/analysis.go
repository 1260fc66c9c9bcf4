// Package analysis offers simple statistics over byte slices.
package analysis

import "math"

// Frequency counts byte occurrences, omitting unseen values.
func Frequency(data []byte) map[byte]int {
	freq := make(map[byte]int)
	for _, c := range data {
		freq[c]++
	}
	return freq
}

// Entropy is the Shannon entropy of the byte distribution in bits per
// byte: 0.0 for empty or single-valued input, 8.0 for a sequence
// containing all 256 values equally often.
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0
	}
	var counts [256]int
	for _, c := range data {
		counts[c]++
	}
	total := float64(len(data))
	var e float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / total
		e -= p * math.Log2(p)
	}
	return e
}
