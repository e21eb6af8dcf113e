package core

// Source is the randomness capability the simulation consumes.
// *math/rand.Rand satisfies it. Every draw advances the source.
type Source interface {
	Uint32() uint32
}

// randomByte draws one value from src and keeps its low byte.
func randomByte(src Source) uint8 {
	return uint8(src.Uint32())
}
