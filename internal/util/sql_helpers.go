package util

// BoolToNumber maps a bool onto Oracle's NUMBER(1) convention
func BoolToNumber(b bool) int {
	if b {
		return 1
	}
	return 0
}
