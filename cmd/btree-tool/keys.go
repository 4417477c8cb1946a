package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
)

var demoKeys = []int64{8, 9, 10, 11, 15, 20, 17, 25, 30, 40, 50, 60, 70, 80, 90}

// Parses keys from command arguments. Each argument may hold several comma-separated keys.
func parseKeys(args []string) ([]int64, error) {
	var out []int64
	for _, arg := range args {
		for _, s := range strings.Split(arg, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			k, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid key %q: %w", s, err)
			}
			out = append(out, k)
		}
	}
	return out, nil
}

// Generates `count` distinct keys in [0, maxKey], in random order.
func randomKeys(faker *gofakeit.Faker, count int, maxKey int64) ([]int64, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative key count: %d", count)
	}
	if maxKey < int64(count)-1 {
		return nil, fmt.Errorf("can't pick %d distinct keys at most %d", count, maxKey)
	}

	var picked []int
	if int64(count)*2 > maxKey {
		// dense: shuffle the whole range and take a prefix
		all := make([]int, maxKey+1)
		for i := range all {
			all[i] = i
		}
		faker.ShuffleInts(all)
		picked = all[:count]
	} else {
		seen := make(map[int]bool, count)
		for len(picked) < count {
			k := faker.Number(0, int(maxKey))
			if seen[k] {
				continue
			}
			seen[k] = true
			picked = append(picked, k)
		}
		faker.ShuffleInts(picked)
	}

	out := make([]int64, len(picked))
	for i, k := range picked {
		out[i] = int64(k)
	}
	return out, nil
}
