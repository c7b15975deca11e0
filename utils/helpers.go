package utils

import "fmt"

// PadBallLabel formats a ball number as the two-digit label used in
// frequency tables ("07", "23").
func PadBallLabel(n int) string {
	return fmt.Sprintf("%02d", n)
}
