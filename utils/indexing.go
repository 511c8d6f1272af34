package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewRangeOffset(rmin, rmax int) (r Index) {
	// Input range is "1 based", returned range is "0 based"
	return NewRange(rmin-1, rmax-1)
}

func NewRange(rmin, rmax int) (r Index) {
	r = make(Index, rmax-rmin+1)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = ival + val
	}
	return
}

func (I Index) Contains(val int) bool {
	for _, ival := range I {
		if ival == val {
			return true
		}
	}
	return false
}
