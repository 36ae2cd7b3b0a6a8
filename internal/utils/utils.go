package utils

import "fmt"

// Print a Colored Block in terminal
func ColoredBlock(block string, red int, green int, blue int) string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm%s\033[0m", red, green, blue, block)
}

// ClampByte limits v to the range of a byte [0, 255]
func ClampByte(v int) byte {
	return byte(min(max(v, 0), 255))
}
