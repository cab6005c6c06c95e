//-----------------------------------------------------------------------------

package crc

import (
	"fmt"
	"sort"
)

//-----------------------------------------------------------------------------

// Named binds a catalogue label to a CRC Definition.
type Named struct {
	Name string
	Def  Definition
}

//-----------------------------------------------------------------------------

// catalog holds the repository's fixed table of named CRC flavors,
// reproduced verbatim from the external-interfaces tuples: CRC-4/ITU,
// CRC-5/{EPC,ITU,USB}, CRC-6/ITU, CRC-7/MMC, CRC-8 and its ITU/ROHC/MAXIM
// variants, the CRC-16 family, CRC-32, and CRC-32/MPEG-2.
var catalog = buildCatalog()

func buildCatalog() map[string]Definition {
	entries := []Named{
		{"CRC_4_ITU", MustNewDefinition(4, 0x03, true, 0x0, true, 0x0)},

		{"CRC_5_EPC", MustNewDefinition(5, 0x09, false, 0x09, false, 0x00)},
		{"CRC_5_ITU", MustNewDefinition(5, 0x15, true, 0x00, true, 0x00)},
		{"CRC_5_USB", MustNewDefinition(5, 0x05, true, 0x1F, true, 0x1F)},

		{"CRC_6_ITU", MustNewDefinition(6, 0x03, true, 0x00, true, 0x00)},

		{"CRC_7_MMC", MustNewDefinition(7, 0x09, false, 0x00, false, 0x00)},

		{"CRC_8", MustNewDefinition(8, 0x07, false, 0x00, false, 0x00)},
		{"CRC_8_ITU", MustNewDefinition(8, 0x07, false, 0x00, false, 0x55)},
		{"CRC_8_ROHC", MustNewDefinition(8, 0x07, true, 0xFF, true, 0x00)},
		{"CRC_8_MAXIM", MustNewDefinition(8, 0x31, true, 0x00, true, 0x00)},

		{"CRC_16_IBM", MustNewDefinition(16, 0x8005, true, 0x0000, true, 0x0000)},
		{"CRC_16_MAXIM", MustNewDefinition(16, 0x8005, true, 0x0000, true, 0xFFFF)},
		{"CRC_16_USB", MustNewDefinition(16, 0x8005, true, 0xFFFF, true, 0xFFFF)},
		{"CRC_16_MODBUS", MustNewDefinition(16, 0x8005, true, 0xFFFF, true, 0x0000)},
		{"CRC_16_CCITT", MustNewDefinition(16, 0x1021, true, 0x0000, true, 0x0000)},
		{"CRC_16_CCITT_FALSE", MustNewDefinition(16, 0x1021, false, 0xFFFF, false, 0x0000)},
		{"CRC_16_X25", MustNewDefinition(16, 0x1021, true, 0xFFFF, true, 0xFFFF)},
		{"CRC_16_XMODEM", MustNewDefinition(16, 0x1021, false, 0x0000, false, 0x0000)},
		{"CRC_16_DNP", MustNewDefinition(16, 0x3D65, true, 0x0000, true, 0xFFFF)},

		{"CRC_32", MustNewDefinition(32, 0x04C11DB7, true, 0xFFFFFFFF, true, 0xFFFFFFFF)},
		{"CRC_32_MPEG_2", MustNewDefinition(32, 0x04C11DB7, false, 0xFFFFFFFF, false, 0x00000000)},
	}

	m := make(map[string]Definition, len(entries))
	for _, e := range entries {
		m[e.Name] = e.Def
	}
	return m
}

//-----------------------------------------------------------------------------

// Lookup returns the Definition registered under name, or an error wrapping
// ErrLookup if no such entry exists.
func Lookup(name string) (Definition, error) {
	d, ok := catalog[name]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrLookup, name)
	}
	return d, nil
}

//-----------------------------------------------------------------------------

// Names returns the sorted list of catalogue labels.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//-----------------------------------------------------------------------------
