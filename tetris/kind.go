package tetris

import "fmt"

// Kind identifies one of the seven tetrominoes.
type Kind uint8

const (
	KindI Kind = iota
	KindT
	KindO
	KindS
	KindZ
	KindL
	KindJ
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

var kindNames = [KindCount]string{"I", "T", "O", "S", "Z", "L", "J"}

func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return int(k) < KindCount
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
