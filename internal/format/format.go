package format

import (
	"fmt"
	"strconv"
)

// BoldHighest returns both values as text, wrapping the strictly
// greater one in Discord bold markup. Equal values are left plain.
func BoldHighest(first, second int) (string, string) {
	if first > second {
		return fmt.Sprintf("**%d**", first), strconv.Itoa(second)
	}
	if first < second {
		return strconv.Itoa(first), fmt.Sprintf("**%d**", second)
	}
	return strconv.Itoa(first), strconv.Itoa(second)
}

// GreenToRed maps value onto a color ramp from plain green 00ff00
// (value <= minValue) to plain red ff0000 (value >= maxValue) and
// returns it as 6 lowercase hex digits without a leading #.
// Callers wanting a decimal Discord embed color convert it with
// strconv.ParseInt(c, 16, 32).
func GreenToRed(value, minValue, maxValue float64) string {
	if value < minValue {
		value = minValue
	} else if value > maxValue {
		value = maxValue
	}
	if maxValue <= minValue {
		return "c0c0c0"
	}
	ratio := (value - minValue) / (maxValue - minValue)
	red := int(255 * ratio)
	green := int(255 * (1 - ratio))
	return fmt.Sprintf("%02x%02x00", red, green)
}
