//-----------------------------------------------------------------------------

package crc

import (
	"fmt"
	"strings"
)

//-----------------------------------------------------------------------------

// lineWrapLimit is the default line length threshold of §4.6: lines longer
// than this are wrapped at the last '^' token before the threshold.
const lineWrapLimit = 100

// continuationIndent is the padding a wrapped continuation line carries,
// mirroring the Python original's fixed 20-column indent.
const continuationIndent = 20

//-----------------------------------------------------------------------------

// termToken renders a single Term as the placeholder token the emitted HDL
// uses in place of the indeterminate: din_xor[k] for data bits, crc[k] for
// carried-forward state bits.
func termToken(t Term) string {
	if t.Kind == TermState {
		return fmt.Sprintf("crc[%d]", t.Index)
	}
	return fmt.Sprintf("din_xor[%d]", t.Index)
}

//-----------------------------------------------------------------------------

// exprRHS renders e as the right-hand side of a Verilog assign statement: an
// XOR chain over its canonically-ordered terms, or the literal 1'b0 if e is
// identically zero (possible when a definition's structure cancels every
// term of some output bit).
func exprRHS(e Expr) string {
	terms := e.Terms()
	if len(terms) == 0 {
		return "1'b0"
	}
	tokens := make([]string, len(terms))
	for i, t := range terms {
		tokens[i] = termToken(t)
	}
	return strings.Join(tokens, " ^ ")
}

//-----------------------------------------------------------------------------

// wrapAssignLine splits line into continuation lines once it exceeds limit,
// breaking at the last '^' token strictly before the limit. Continuation
// lines are indented and still begin with '^', so the split remains valid
// Verilog. A line with no '^' before the limit (e.g. a single wide token) is
// left unsplit.
func wrapAssignLine(line string, limit int) []string {
	if len(line) <= limit {
		return []string{line}
	}
	var parts []string
	for len(line) > limit {
		idx := strings.LastIndex(line[:limit], "^")
		if idx < 0 {
			break
		}
		parts = append(parts, line[:idx])
		line = strings.Repeat(" ", continuationIndent) + line[idx:]
	}
	parts = append(parts, line)
	return parts
}

//-----------------------------------------------------------------------------

// assignLines renders one "assign lhs[i] = ...;" line per entry of exprs
// (exprs[i] is bit i, LSB first), each individually line-wrapped.
func assignLines(lhs string, exprs []Expr) []string {
	var lines []string
	for i, e := range exprs {
		line := fmt.Sprintf("assign %s[%d] = %s;", lhs, i, exprRHS(e))
		lines = append(lines, wrapAssignLine(line, lineWrapLimit)...)
	}
	return lines
}

//-----------------------------------------------------------------------------

// polyHex renders def.Poly() as a 0x-prefixed hex literal padded to the
// number of hex digits needed to cover def.Width() bits.
func polyHex(def Definition) string {
	digits := (def.Width() + 3) / 4
	return fmt.Sprintf("0x%0*x", digits, def.Poly())
}

//-----------------------------------------------------------------------------

const (
	bannerBegin = "// generated by crcgen; do not edit by hand, begin"
	bannerEnd   = "// generated by crcgen; do not edit by hand, end"
)

// RenderSingleStep generates the single-step symbolic equations for def at
// din width w (§4.5.1) and formats them as a complete HDL block (§4.6):
// a commented header naming the CRC width, polynomial, and input width,
// one line-wrapped "assign crc_calc[i] = ...;" per output bit, and a
// trailing banner marker. Fails with ErrDomain under the same conditions as
// GenerateSingleStep.
func RenderSingleStep(def Definition, w int) (string, error) {
	exprs, err := GenerateSingleStep(def, w)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintln(&b, bannerBegin)
	fmt.Fprintln(&b, "/*")
	fmt.Fprintln(&b, "single-step CRC computation")
	fmt.Fprintf(&b, "CRC width: %d\n", def.Width())
	fmt.Fprintf(&b, "CRC polynomial: %s\n", polyHex(def))
	fmt.Fprintf(&b, "input data width: %d\n", w)
	fmt.Fprintln(&b, "*/")
	for _, line := range assignLines("crc_calc", exprs) {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b, bannerEnd)
	return b.String(), nil
}

//-----------------------------------------------------------------------------

// RenderMultiStep generates the multi-step stream and last-fragment
// symbolic equations for def at din width w and last-fragment width l
// (§4.5.2) and formats them as a complete HDL block: a header naming the
// CRC width, polynomial, input width, and last-fragment width; the stream
// "assign crc_calc[i] = ...;" lines; a comment marking the last-fragment
// section; the "assign crc_calc_last[i] = ...;" lines; and a trailing
// banner marker. Fails with ErrDomain under the same conditions as
// GenerateMultiStep.
func RenderMultiStep(def Definition, w, l int) (string, error) {
	stream, last, err := GenerateMultiStep(def, w, l)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintln(&b, bannerBegin)
	fmt.Fprintln(&b, "/*")
	fmt.Fprintln(&b, "multi-step CRC computation")
	fmt.Fprintf(&b, "CRC width: %d\n", def.Width())
	fmt.Fprintf(&b, "CRC polynomial: %s\n", polyHex(def))
	fmt.Fprintf(&b, "input data width: %d\n", w)
	fmt.Fprintf(&b, "last fragment data width: %d\n", l)
	fmt.Fprintln(&b, "*/")
	for _, line := range assignLines("crc_calc", stream) {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b, "// last fragment; the CRC-width zero tail is already appended")
	for _, line := range assignLines("crc_calc_last", last) {
		fmt.Fprintln(&b, line)
	}
	fmt.Fprintln(&b, bannerEnd)
	return b.String(), nil
}

//-----------------------------------------------------------------------------
