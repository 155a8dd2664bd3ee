package domain

// ValidPINFormat reports whether pin is exactly 4 ASCII digits.
func ValidPINFormat(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// MaskPIN renders a PIN for confirmation messages, first two digits only.
func MaskPIN(pin string) string {
	if len(pin) < 2 {
		return "**"
	}
	return pin[:2] + "**"
}
