// Package safe provides checked numeric narrowing.
package safe

import (
	"fmt"
	"math"
)

// Int narrows an unsigned integer to int, rejecting values above MaxInt.
func Int[T ~uint | ~uint32 | ~uint64](v T) (int, error) {
	if uint64(v) > math.MaxInt {
		return 0, fmt.Errorf("value %d out of int range", v)
	}
	return int(v), nil
}
