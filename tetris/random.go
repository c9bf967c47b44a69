package tetris

import "math/rand/v2"

// Randomizer is the single source of randomness of a Session.
type Randomizer interface {
	// NextKind picks the kind of the next piece.
	NextKind() Kind
	// NextTexture picks a texture out of count registered textures, returning a
	// value in 1..count, or 0 when count is not positive.
	NextTexture(count int) TextureID
}

type uniform struct {
	rng *rand.Rand
}

// NewRandom returns a Randomizer drawing kinds uniformly and independently.
func NewRandom(seed uint64) Randomizer {
	return &uniform{rng: newRand(seed)}
}

func (u *uniform) NextKind() Kind {
	return Kind(u.rng.IntN(KindCount))
}

func (u *uniform) NextTexture(count int) TextureID {
	return pickTexture(u.rng, count)
}

type bag struct {
	rng     *rand.Rand
	pending []Kind
}

// NewBag returns a Randomizer that deals shuffled bags of all seven kinds, so every
// kind appears once per seven pieces.
func NewBag(seed uint64) Randomizer {
	return &bag{rng: newRand(seed)}
}

func (b *bag) NextKind() Kind {
	if len(b.pending) == 0 {
		b.pending = Kinds()
		b.rng.Shuffle(len(b.pending), func(i, j int) {
			b.pending[i], b.pending[j] = b.pending[j], b.pending[i]
		})
	}
	k := b.pending[0]
	b.pending = b.pending[1:]
	return k
}

func (b *bag) NextTexture(count int) TextureID {
	return pickTexture(b.rng, count)
}

// Sequence is a deterministic Randomizer that cycles through fixed kinds and
// textures. It is meant for tests and replays.
type Sequence struct {
	kinds    []Kind
	textures []TextureID
	nextKind int
	nextTex  int
}

// NewSequence returns a Sequence cycling through kinds. It panics if kinds is empty.
func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		panic("tetris: empty kind sequence")
	}
	return &Sequence{kinds: kinds}
}

// WithTextures sets the texture ids handed out in order. Ids larger than the
// requested count wrap around.
func (s *Sequence) WithTextures(ids ...TextureID) *Sequence {
	s.textures = ids
	return s
}

func (s *Sequence) NextKind() Kind {
	k := s.kinds[s.nextKind%len(s.kinds)]
	s.nextKind++
	return k
}

func (s *Sequence) NextTexture(count int) TextureID {
	if count <= 0 || len(s.textures) == 0 {
		return 0
	}
	id := s.textures[s.nextTex%len(s.textures)]
	s.nextTex++
	if id == 0 {
		return 0
	}
	return (id-1)%TextureID(count) + 1
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pickTexture(rng *rand.Rand, count int) TextureID {
	if count <= 0 {
		return 0
	}
	return TextureID(rng.IntN(count) + 1)
}
