package board

// Zobrist hash keys for position hashing. Uses a PRNG with a fixed seed so
// runs are reproducible.
var (
	zobristPiece [4][100]uint64 // [Piece][square index]
	zobristSide  uint64         // XORed in when Black is to move
)

func init() {
	initZobrist()
}

// prng is a small xorshift64* generator, seeded fixed for reproducibility.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x44726175FEED1234)

	for piece := WhiteMan; piece <= BlackKing; piece++ {
		for sq := 0; sq < 100; sq++ {
			zobristPiece[piece][sq] = rng.next()
		}
	}

	zobristSide = rng.next()
}
