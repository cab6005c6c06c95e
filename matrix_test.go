//-----------------------------------------------------------------------------

package crc

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

//-----------------------------------------------------------------------------

func TestBuildCompanionMatrix(aT *testing.T) {
	Convey(funcName(), aT, func() {
		Convey("row 0 is the polynomial itself under this package's row encoding", func() {
			t := BuildCompanionMatrix(0x8005, 16)
			So(t.Row(0), ShouldEqual, uint64(0x8005))
		})

		Convey("rows 1..n-1 form a sub-diagonal identity", func() {
			n := 8
			t := BuildCompanionMatrix(0x07, n)
			for i := 1; i < n; i++ {
				So(t.Row(i), ShouldEqual, uint64(1)<<uint(n-i))
			}
		})

		Convey("N is preserved", func() {
			t := BuildCompanionMatrix(0x04C11DB7, 32)
			So(t.N(), ShouldEqual, 32)
		})
	})
}

//-----------------------------------------------------------------------------

func TestMatrixPow(aT *testing.T) {
	Convey(funcName(), aT, func() {
		t := BuildCompanionMatrix(0x8005, 16)

		Convey("T^0 is the identity", func() {
			id := t.Pow(0)
			for i := 0; i < 16; i++ {
				So(id.Row(i), ShouldEqual, uint64(1)<<uint(15-i))
			}
		})

		Convey("T^1 equals T", func() {
			p1 := t.Pow(1)
			for i := 0; i < 16; i++ {
				So(p1.Row(i), ShouldEqual, t.Row(i))
			}
		})

		Convey("T^(a+b) equals T^a . T^b", func() {
			a := t.Pow(5).Mul(t.Pow(7))
			b := t.Pow(12)
			for i := 0; i < 16; i++ {
				So(a.Row(i), ShouldEqual, b.Row(i))
			}
		})
	})
}

//-----------------------------------------------------------------------------

func TestMulRow(aT *testing.T) {
	Convey(funcName(), aT, func() {
		t := BuildCompanionMatrix(0x07, 8)

		Convey("the zero row maps to the zero row", func() {
			So(t.MulRow(0), ShouldEqual, uint64(0))
		})

		Convey("a single set bit selects exactly that matrix row", func() {
			for i := 0; i < 8; i++ {
				So(t.MulRow(uint64(1)<<uint(7-i)), ShouldEqual, t.Row(i))
			}
		})
	})
}
