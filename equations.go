//-----------------------------------------------------------------------------

package crc

import "fmt"

//-----------------------------------------------------------------------------

// GenerateSingleStep derives the single-step symbolic equations of §4.5.1:
// one XOR expression per output CRC bit describing a single clock's worth of
// advancement over a W-bit din_xor word that has already been pre-reduced
// against prior state by the surrounding hardware. W is rounded up to the
// nearest multiple of 8 internally; the lowest-numbered min(W,N) data
// symbols are blanked to represent the appended zero-tail (§4.5,
// "Single-step mode, indeterminate numbering" in SPEC_FULL.md).
//
// The returned slice has N entries, index 0 = crc_calc[0] (LSB) through
// index N-1 = crc_calc[N-1] (MSB), matching the emission order of §4.6.
func GenerateSingleStep(def Definition, w int) ([]Expr, error) {
	if w <= 0 {
		return nil, fmt.Errorf("%w: din width must be greater than 0, got %d", ErrDomain, w)
	}

	n := def.Width()
	t := BuildCompanionMatrix(def.Poly(), n)

	w8 := ((w + 7) / 8) * 8
	total := w8 + n
	blank := w
	if n < blank {
		blank = n
	}

	row := makeReversedSymbols(TermData, total)
	for i := 0; i < blank; i++ {
		row[total-1-i] = Expr{}
	}

	acc := advanceSymbolic(t, row, n)
	return reverseExprs(acc), nil
}

//-----------------------------------------------------------------------------

// GenerateMultiStep derives the multi-step "stream" and "last fragment"
// symbolic equations of §4.5.2: W >= N > 0 is the streaming chunk width, and
// 1 <= L <= W is the effective width of the final, possibly-short chunk.
//
// stream describes one cycle of advancement over a full W-bit data word
// while carrying forward an explicit N-bit state row c0..c(N-1). last
// describes the closing cycle: only the top L bits of the W-bit data row
// are meaningful, and N zero bits are appended to flush the register.
//
// Both returned slices have N entries in the same crc_calc[0..N-1]
// (LSB-first) order as GenerateSingleStep.
func GenerateMultiStep(def Definition, w, l int) (stream []Expr, last []Expr, err error) {
	n := def.Width()

	if w <= 0 {
		return nil, nil, fmt.Errorf("%w: din width must be greater than 0, got %d", ErrDomain, w)
	}
	if w < n {
		return nil, nil, fmt.Errorf("%w: din width %d can't be less than CRC width %d", ErrDomain, w, n)
	}
	if l <= 0 {
		return nil, nil, fmt.Errorf("%w: last fragment width must be greater than 0, got %d", ErrDomain, l)
	}
	if l > w {
		return nil, nil, fmt.Errorf("%w: last fragment width %d can't be greater than din width %d", ErrDomain, l, w)
	}

	t := BuildCompanionMatrix(def.Poly(), n)
	c := makeReversedSymbols(TermState, n)
	d := makeReversedSymbols(TermData, w)

	streamAcc := xorExprVec(mulSymbolicRow(c, t.Pow(w)), advanceSymbolic(t, d, n))

	lastRow := make([]Expr, l+n)
	copy(lastRow, d[:l])
	for i := l; i < l+n; i++ {
		lastRow[i] = Expr{}
	}
	lastAcc := xorExprVec(mulSymbolicRow(c, t.Pow(l+n)), advanceSymbolic(t, lastRow, n))

	return reverseExprs(streamAcc), reverseExprs(lastAcc), nil
}

//-----------------------------------------------------------------------------
