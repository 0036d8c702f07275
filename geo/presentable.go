package geo

import (
	"fmt"
	"math"
)

// Presentable renders a distance for display: meters under one kilometer,
// otherwise kilometers with one decimal.
func Presentable(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1f km", km)
}
