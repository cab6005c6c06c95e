//-----------------------------------------------------------------------------

package crc

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

//-----------------------------------------------------------------------------

func TestReflectBytes(aT *testing.T) {
	Convey(funcName(), aT, func() {
		Convey("reflecting is an involution", func() {
			cases := []string{"00", "ff", "a5", "0102030405", "deadbeef"}
			for _, c := range cases {
				once, err := ReflectBytes(c)
				So(err, ShouldBeNil)
				twice, err := ReflectBytes(once)
				So(err, ShouldBeNil)
				So(twice, ShouldEqual, c)
			}
		})

		Convey("byte count is preserved", func() {
			out, err := ReflectBytes("0102030405")
			So(err, ShouldBeNil)
			So(len(out), ShouldEqual, len("0102030405"))
		})

		Convey("a known byte reflects correctly: 0x80 -> 0x01", func() {
			out, err := ReflectBytes("80")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "01")
		})

		Convey("odd-length input fails with ErrInput", func() {
			_, err := ReflectBytes("abc")
			So(errors.Is(err, ErrInput), ShouldBeTrue)
		})

		Convey("non-hex content fails with ErrInput", func() {
			_, err := ReflectBytes("zz")
			So(errors.Is(err, ErrInput), ShouldBeTrue)
		})
	})
}

//-----------------------------------------------------------------------------

func TestReverseBits(aT *testing.T) {
	Convey(funcName(), aT, func() {
		Convey("reversing a byte matches the known 0x80 -> 0x01 case", func() {
			So(reverseBits(0x80, 8), ShouldEqual, uint64(0x01))
		})

		Convey("reversing twice is the identity", func() {
			for _, v := range []uint64{0, 1, 0x8005, 0xFFFFFFFF} {
				So(reverseBits(reverseBits(v, 32), 32), ShouldEqual, v)
			}
		})
	})
}
