package partition

import "fmt"

// Kind identifies the storage-class wire tag of an encoded Partition.
// Only the bottom three bits are meaningful; the rest are reserved.
type Kind uint8

const (
	KindEmpty  Kind = 0b000
	KindFull   Kind = 0b001
	KindBitmap Kind = 0b010
	KindVec    Kind = 0b011
	KindRun    Kind = 0b100
	KindTree   Kind = 0b101
)

// String renders the kind's name.
func (k Kind) String() string {
	switch k & 0b111 {
	case KindEmpty:
		return "Empty"
	case KindFull:
		return "Full"
	case KindBitmap:
		return "Bitmap"
	case KindVec:
		return "Vec"
	case KindRun:
		return "Run"
	case KindTree:
		return "Tree"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the six defined storage classes.
func (k Kind) Valid() bool {
	switch k {
	case KindEmpty, KindFull, KindBitmap, KindVec, KindRun, KindTree:
		return true
	default:
		return false
	}
}
