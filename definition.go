//-----------------------------------------------------------------------------

package crc

import "fmt"

//-----------------------------------------------------------------------------

// Definition is an immutable parameterization of a CRC algorithm: width,
// generator polynomial (truncated form, the implicit leading x^N
// coefficient omitted), input/output reflection, and input/output XOR
// masks. A Definition is safe to share across goroutines and across any
// number of Calculator or equation-generator calls once constructed.
type Definition struct {
	width      int
	poly       uint64
	reflectIn  bool
	xorIn      uint64
	reflectOut bool
	xorOut     uint64
}

//-----------------------------------------------------------------------------

// fitsWidth reports whether v fits in the low width bits of a uint64.
// width==64 is a special case: every uint64 value fits, and 1<<64 would
// silently wrap to zero under Go's shift-count-overflow rule for unsigned
// types, so the general "v >= 1<<width" test cannot be used there.
func fitsWidth(v uint64, width int) bool {
	if width >= 64 {
		return true
	}
	return v < (uint64(1) << uint(width))
}

//-----------------------------------------------------------------------------

// NewDefinition validates and constructs a Definition. It fails with an
// error wrapping ErrConfig if width is outside [4,64] or if poly, xorIn, or
// xorOut does not fit in width bits.
func NewDefinition(width int, poly uint64, reflectIn bool, xorIn uint64, reflectOut bool, xorOut uint64) (Definition, error) {
	if width < 4 || width > 64 {
		return Definition{}, fmt.Errorf("%w: width must be in [4,64], got %d", ErrConfig, width)
	}
	if !fitsWidth(poly, width) {
		return Definition{}, fmt.Errorf("%w: poly 0x%x does not fit in %d bits", ErrConfig, poly, width)
	}
	if !fitsWidth(xorIn, width) {
		return Definition{}, fmt.Errorf("%w: xorIn 0x%x does not fit in %d bits", ErrConfig, xorIn, width)
	}
	if !fitsWidth(xorOut, width) {
		return Definition{}, fmt.Errorf("%w: xorOut 0x%x does not fit in %d bits", ErrConfig, xorOut, width)
	}
	return Definition{
		width:      width,
		poly:       poly,
		reflectIn:  reflectIn,
		xorIn:      xorIn,
		reflectOut: reflectOut,
		xorOut:     xorOut,
	}, nil
}

//-----------------------------------------------------------------------------

// MustNewDefinition is like NewDefinition but panics on error. Intended for
// package-level catalogue initialization where the tuples are fixed and
// known-valid at compile time.
func MustNewDefinition(width int, poly uint64, reflectIn bool, xorIn uint64, reflectOut bool, xorOut uint64) Definition {
	d, err := NewDefinition(width, poly, reflectIn, xorIn, reflectOut, xorOut)
	if err != nil {
		panic(err)
	}
	return d
}

//-----------------------------------------------------------------------------

// Width returns the CRC width N, in bits.
func (d Definition) Width() int { return d.width }

// Poly returns the truncated generator polynomial.
func (d Definition) Poly() uint64 { return d.poly }

// ReflectIn reports whether input bytes are bit-reflected before processing.
func (d Definition) ReflectIn() bool { return d.reflectIn }

// XorIn returns the value XORed into the leading N bits of the processed
// message.
func (d Definition) XorIn() uint64 { return d.xorIn }

// ReflectOut reports whether the final N-bit state is bit-reflected before
// the output XOR mask is applied.
func (d Definition) ReflectOut() bool { return d.reflectOut }

// XorOut returns the value XORed into the final N-bit state.
func (d Definition) XorOut() uint64 { return d.xorOut }

//-----------------------------------------------------------------------------
