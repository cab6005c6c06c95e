//-----------------------------------------------------------------------------

package crc

import "sort"

//-----------------------------------------------------------------------------

// TermKind distinguishes the two indeterminate namespaces the equation
// generator draws from: current-window data bits and current CRC-state
// bits.
type TermKind uint8

const (
	// TermData identifies a data-bit indeterminate (emitted as din_xor[k]).
	TermData TermKind = iota
	// TermState identifies a CRC-state indeterminate (emitted as crc[k]).
	TermState
)

// Term identifies a single symbolic indeterminate, dNN or cNN in the
// notation this package's din_xor/crc token emission follows.
type Term struct {
	Kind  TermKind
	Index int
}

//-----------------------------------------------------------------------------

// Expr is a canonical GF(2) sum (XOR) of distinct Terms. Duplicate terms
// cancel via set-symmetric-difference, which realizes x+x=0 automatically;
// the zero value is the empty sum (identically 0).
type Expr map[Term]struct{}

// NewExpr returns the single-term expression t.
func NewExpr(t Term) Expr {
	return Expr{t: struct{}{}}
}

//-----------------------------------------------------------------------------

// XOR returns e+other over GF(2): terms present in exactly one operand
// survive, terms present in both cancel.
func (e Expr) XOR(other Expr) Expr {
	result := make(Expr, len(e)+len(other))
	for t := range e {
		result[t] = struct{}{}
	}
	for t := range other {
		if _, ok := result[t]; ok {
			delete(result, t)
		} else {
			result[t] = struct{}{}
		}
	}
	return result
}

//-----------------------------------------------------------------------------

// Terms returns e's terms in canonical order: ascending by (Kind, Index).
func (e Expr) Terms() []Term {
	terms := make([]Term, 0, len(e))
	for t := range e {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Kind != terms[j].Kind {
			return terms[i].Kind < terms[j].Kind
		}
		return terms[i].Index < terms[j].Index
	})
	return terms
}

//-----------------------------------------------------------------------------

// xorExprVec XORs two equal-length Expr vectors element-wise.
func xorExprVec(a, b []Expr) []Expr {
	result := make([]Expr, len(a))
	for i := range a {
		result[i] = a[i].XOR(b[i])
	}
	return result
}

// reverseExprs returns a copy of v with element order reversed, used to go
// from this package's big-endian row convention (position 0 = most
// significant) to the emitter's low-index-first output convention.
func reverseExprs(v []Expr) []Expr {
	result := make([]Expr, len(v))
	for i, e := range v {
		result[len(v)-1-i] = e
	}
	return result
}

//-----------------------------------------------------------------------------

// mulSymbolicRow computes row · m (mod 2) where row is an n-wide vector of
// Exprs (n = m.N()): the symbolic analogue of Matrix.MulRow, following the
// same "copy if 1, empty if 0" rule per matrix cell described in the
// design notes.
func mulSymbolicRow(row []Expr, m Matrix) []Expr {
	n := m.N()
	result := make([]Expr, n)
	for j := range result {
		result[j] = Expr{}
	}
	for i := 0; i < n; i++ {
		if len(row[i]) == 0 {
			continue
		}
		rowBits := m.Row(i)
		for j := 0; j < n; j++ {
			if rowBits&(uint64(1)<<uint(n-1-j)) != 0 {
				result[j] = result[j].XOR(row[i])
			}
		}
	}
	return result
}

//-----------------------------------------------------------------------------

// makeReversedSymbols returns a count-wide row of distinct Terms of the
// given kind, with row position p carrying index (count-1-p) — the
// big-endian-reversed numbering this package's symbolic generator uses
// throughout (see SPEC_FULL.md §4.5).
func makeReversedSymbols(kind TermKind, count int) []Expr {
	row := make([]Expr, count)
	for p := 0; p < count; p++ {
		row[p] = NewExpr(Term{Kind: kind, Index: count - 1 - p})
	}
	return row
}

//-----------------------------------------------------------------------------
