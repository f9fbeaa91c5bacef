package loadtest

import (
	"math/rand/v2"
	"strconv"
)

const keyPrefix = "ORD"

// WriteKey returns a freshly generated insert key: "ORD" plus a random
// integer in [10000,100000). Collisions are possible and are not errors.
func WriteKey() string {
	return keyPrefix + strconv.Itoa(10000+rand.IntN(90000))
}

// TargetKey maps a 1-based task index to a read/update key. Indices above
// 4000 fold back into the [2001,4000] suffix range so that later tasks
// re-target already-used keys under concurrency.
func TargetKey(index int) string {
	n := index
	if index > 4000 {
		n = index - 4000
	}
	return keyPrefix + strconv.Itoa(2000+n)
}
