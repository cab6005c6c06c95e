//-----------------------------------------------------------------------------

// Package crc implements parametric Cyclic Redundancy Check computation and
// symbolic parallel-CRC hardware equation generation, both built on the
// state-transition-matrix (companion matrix) formulation of a CRC over
// GF(2) rather than the byte-table (Sarwate) method.
//
// Two tightly coupled pieces share the same companion matrix and
// matrix-power advancement law:
//
//   - A numeric calculator (Calc, CalcHex, Calculator) that computes the CRC
//     of a byte sequence for any Definition.
//   - A symbolic equation generator (GenerateSingleStep, GenerateMultiStep)
//     that, for a chosen parallel data width, derives one XOR expression per
//     output CRC bit describing a single clock cycle of hardware CRC
//     advancement, renderable as HDL text via RenderSingleStep and
//     RenderMultiStep.
//
// Neither piece is a streaming API: a Definition describes a whole CRC
// flavor, and Calc/CalcHex consume a complete message in one call.
package crc

//-----------------------------------------------------------------------------
