package text

// IsDecimal reports whether a numeric span already accepted by a float
// scanner is also a legal JSON number literal: no hex forms, and a
// leading zero only when immediately followed by a decimal point (same
// for a negative zero).
func IsDecimal(b []byte) bool {
	if len(b) > 1 && b[0] == '0' && b[1] != '.' {
		return false
	}
	if len(b) > 2 && b[0] == '-' && b[1] == '0' && b[2] != '.' {
		return false
	}
	for _, c := range b {
		if c == 'x' || c == 'X' {
			return false
		}
	}
	return true
}
