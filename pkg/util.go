package pkg

import (
	"math"
	"unsafe"
)

// BytesToString converts bytes slice to a string without extra allocation
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// Round2 rounds v to two decimal places, the precision used for all
// user facing weights and percentages.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
