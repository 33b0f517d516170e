package game

// seqSource replays a fixed list of values, wrapping around
type seqSource struct {
	vals  []float64
	draws int
}

func newSeqSource(vals ...float64) *seqSource {
	return &seqSource{vals: vals}
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.draws%len(s.vals)]
	s.draws++
	return v
}
