package utils

import "fmt"

func SiUnits(number float64, decimals int) string {
	if number >= 1000000000000 {
		return fmt.Sprintf("%.*f T", decimals, number/1000000000000)
	} else if number >= 1000000000 {
		return fmt.Sprintf("%.*f G", decimals, number/1000000000)
	} else if number >= 1000000 {
		return fmt.Sprintf("%.*f M", decimals, number/1000000)
	} else if number >= 1000 {
		return fmt.Sprintf("%.*f K", decimals, number/1000)
	}

	return fmt.Sprintf("%.*f ", decimals, number)
}

// HashRate formats hashes over a duration in seconds as H/s with SI prefixes
func HashRate(hashes uint64, seconds float64) string {
	if seconds <= 0 {
		return SiUnits(0, 2) + "H/s"
	}
	return SiUnits(float64(hashes)/seconds, 2) + "H/s"
}
