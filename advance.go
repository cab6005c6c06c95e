//-----------------------------------------------------------------------------

package crc

//-----------------------------------------------------------------------------

// advancePlan partitions a bit string of length l into k full n-bit chunks
// (left to right) plus a trailing partial chunk of length r, mirroring the
// matrix-advancement law shared by the numeric calculator (§4.4.1) and the
// symbolic equation generator (§4.5): full chunk j (0-indexed) advances
// through T^{n*(k-1-j)+r}, and the trailing r-bit remainder, if any,
// contributes directly (left-aligned) with no matrix power.
type advancePlan struct {
	n, l, k, r int
}

func newAdvancePlan(l, n int) advancePlan {
	return advancePlan{n: n, l: l, k: l / n, r: l % n}
}

// exponent returns the matrix-power exponent for full chunk j.
func (p advancePlan) exponent(j int) int {
	return p.n*(p.k-1-j) + p.r
}

//-----------------------------------------------------------------------------

// advanceNumeric runs the matrix-advancement law over a bit string of
// length l (l is not required to be a multiple of n), reading bits via
// bitAt(pos) for pos in [0,l). pow supplies matrix powers of the relevant
// Definition's companion matrix (a plain Matrix.Pow call, or a cache-backed
// lookup as used by Calculator); n is the matrix's dimension.
func advanceNumeric(pow func(int) Matrix, bitAt func(pos int) int, l, n int) uint64 {
	plan := newAdvancePlan(l, n)

	readChunk := func(start, length int) uint64 {
		var v uint64
		for i := 0; i < length; i++ {
			v = (v << 1) | uint64(bitAt(start+i))
		}
		return v
	}

	var acc uint64
	tn := pow(n)
	cur := pow(plan.r)
	for j := plan.k - 1; j >= 0; j-- {
		chunk := readChunk(j*n, n)
		acc ^= cur.MulRow(chunk)
		cur = cur.Mul(tn)
	}
	if plan.r > 0 {
		partial := readChunk(plan.k*n, plan.r)
		acc ^= partial << uint(n-plan.r)
	}
	return acc
}

//-----------------------------------------------------------------------------

// advanceSymbolic is the symbolic analogue of advanceNumeric: row holds
// len(row) symbolic entries (position 0 = most significant) and the result
// is an n-wide Expr vector in the same convention.
func advanceSymbolic(t Matrix, row []Expr, n int) []Expr {
	l := len(row)
	plan := newAdvancePlan(l, n)

	acc := make([]Expr, n)
	for i := range acc {
		acc[i] = Expr{}
	}

	tn := t.Pow(n)
	cur := t.Pow(plan.r)
	for j := plan.k - 1; j >= 0; j-- {
		chunk := row[j*n : j*n+n]
		acc = xorExprVec(acc, mulSymbolicRow(chunk, cur))
		cur = cur.Mul(tn)
	}
	if plan.r > 0 {
		partial := row[plan.k*n : plan.k*n+plan.r]
		for i, e := range partial {
			acc[i] = acc[i].XOR(e)
		}
	}
	return acc
}

//-----------------------------------------------------------------------------
