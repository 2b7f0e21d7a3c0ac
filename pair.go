package smartptr

// compressedPair stores a value together with a policy object without
// paying for the policy when it is stateless: the policy comes first in
// the struct, and Go gives a leading zero-sized field no storage at all.
// A trailing zero-sized field would cost a padding byte instead.
type compressedPair[F any, S any] struct {
	second S
	first  F
}

func (p *compressedPair[F, S]) GetFirst() *F {
	return &p.first
}

func (p *compressedPair[F, S]) GetSecond() *S {
	return &p.second
}
