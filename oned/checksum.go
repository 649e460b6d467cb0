package oned

import (
	"fmt"

	zxingrender "github.com/ericlevine/zxingrender"
)

// ChecksumDigitModulo10 returns digits with the UPC/EAN modulo-10 check digit
// appended. Weights alternate 3, 1, 3, ... starting from the rightmost digit
// of the input, so the returned string always has a weighted sum divisible
// by 10.
func ChecksumDigitModulo10(digits string) (string, error) {
	check, err := checkDigit(digits)
	if err != nil {
		return "", err
	}
	return digits + string(rune('0'+check)), nil
}

// CheckStandardUPCEANChecksum reports whether the last digit of s is the
// valid check digit for the digits before it.
func CheckStandardUPCEANChecksum(s string) bool {
	if len(s) < 2 {
		return false
	}
	check, err := checkDigit(s[:len(s)-1])
	if err != nil {
		return false
	}
	return int(s[len(s)-1]-'0') == check
}

func checkDigit(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("checksum of empty string: %w", zxingrender.ErrInvalidArgument)
	}
	if err := checkNumeric(digits); err != nil {
		return 0, err
	}
	odd, even := 0, 0
	for i := len(digits) - 1; i >= 0; i -= 2 {
		odd += int(digits[i] - '0')
	}
	for i := len(digits) - 2; i >= 0; i -= 2 {
		even += int(digits[i] - '0')
	}
	return (10 - (odd*3+even)%10) % 10, nil
}

// checkNumeric validates that a string contains only digits.
func checkNumeric(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("contents contain non-digit character %q: %w", s[i], zxingrender.ErrInvalidArgument)
		}
	}
	return nil
}
