package crt

// SeparateChaining - Collision resolution where each bucket holds a linked chain of entries
const SeparateChaining int = 1

// QuadraticProbing - Open addressing collision resolution probing (h + j*j) mod capacity
const QuadraticProbing int = 2

// Name - Returns a readable name of a collision resolution technique
func Name(crtType int) string {
	switch crtType {
	case SeparateChaining:
		return "SeparateChaining"
	case QuadraticProbing:
		return "QuadraticProbing"
	default:
		return "Unknown"
	}
}
