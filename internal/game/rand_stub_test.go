package game

// fixedRand returns the same Float64 every call and Intn from intn (n-1
// when nil, i.e. the far corner of the screen).
type fixedRand struct {
	f    float64
	intn func(n int) int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int {
	if r.intn != nil {
		return r.intn(n)
	}
	return n - 1
}

// seqRand replays floats in order, then repeats the last one.
type seqRand struct {
	floats []float64
	i      int
}

func (r *seqRand) Float64() float64 {
	if r.i >= len(r.floats) {
		return r.floats[len(r.floats)-1]
	}
	f := r.floats[r.i]
	r.i++
	return f
}

func (r *seqRand) Intn(n int) int { return n - 1 }
