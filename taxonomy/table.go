package taxonomy

// The catalog. Each family owns a contiguous block of the one-byte code
// space; unnamed reserved slots are simply absent. Hex values must be unique
// across the table (see TestHexUnique).
var entries = []Entry{
	{Code: "A00", Hex: 0x00, Name: "rock"},
	{Code: "A01", Hex: 0x01, Name: "classic rock", Parent: "A00"},
	{Code: "A02", Hex: 0x02, Name: "alternative rock", Parent: "A00", Related: []string{"A10"}},
	{Code: "A03", Hex: 0x03, Name: "indie rock", Parent: "A00", Related: []string{"C03"}},
	{Code: "A04", Hex: 0x04, Name: "folk rock", Parent: "A00", Related: []string{"B00", "B06", "B07", "A20"}},
	{Code: "A05", Hex: 0x05, Name: "mellow rock", Parent: "A00"},
	{Code: "A06", Hex: 0x06, Name: "acoustic rock", Parent: "A00"},
	{Code: "A07", Hex: 0x07, Name: "piano rock", Parent: "A00", Related: []string{"B07"}},
	{Code: "A08", Hex: 0x08, Name: "pop rock", Parent: "A00"},
	{Code: "A09", Hex: 0x09, Name: "hard rock", Parent: "A00", Related: []string{"A10", "A11", "A12"}},
	{Code: "A10", Hex: 0x0A, Name: "grunge", Parent: "A00", Related: []string{"A02", "A09", "A11", "A12"}},
	{Code: "A11", Hex: 0x0B, Name: "metal", Parent: "A00"},
	{Code: "A12", Hex: 0x0C, Name: "hardcore", Parent: "A00"},
	{Code: "A13", Hex: 0x0D, Name: "emo", Parent: "A00"},
	{Code: "A14", Hex: 0x0E, Name: "jam band", Parent: "A00"},
	{Code: "A15", Hex: 0x0F, Name: "ska punk", Parent: "A00", Related: []string{"A16"}},
	{Code: "A16", Hex: 0x10, Name: "punk", Parent: "A00", Related: []string{"A15", "C16"}},
	{Code: "A17", Hex: 0x11, Name: "surf rock", Parent: "A00"},
	{Code: "A18", Hex: 0x12, Name: "funk rock", Parent: "A00"},
	{Code: "A19", Hex: 0x13, Name: "rock & roll", Parent: "A00"},
	{Code: "A20", Hex: 0x14, Name: "country rock", Parent: "A00", Related: []string{"B00"}},
	{Code: "A21", Hex: 0x15, Name: "blues rock", Parent: "A00", Related: []string{"H00"}},
	{Code: "A22", Hex: 0x16, Name: "rap rock", Parent: "A00", Related: []string{"I00"}},
	{Code: "A23", Hex: 0x17, Name: "rock electronica", Parent: "A00", Related: []string{"J00"}},

	{Code: "B00", Hex: 0x18, Name: "folk", Related: []string{"A04"}},
	{Code: "B01", Hex: 0x19, Name: "singer-songwriter", Parent: "B00"},
	{Code: "B02", Hex: 0x1A, Name: "world music"},
	{Code: "B06", Hex: 0x1E, Name: "acoustic folk", Parent: "B00"},
	{Code: "B07", Hex: 0x1F, Name: "piano folk", Parent: "B00"},

	{Code: "C00", Hex: 0x30, Name: "pop"},
	{Code: "C03", Hex: 0x33, Name: "indie pop", Parent: "C00", Related: []string{"A03"}},
	{Code: "C16", Hex: 0x40, Name: "pop punk", Parent: "C00", Related: []string{"A15", "A16"}},

	{Code: "D00", Hex: 0x48, Name: "jazz"},
	{Code: "D01", Hex: 0x49, Name: "vocal jazz", Parent: "D00"},
	{Code: "D02", Hex: 0x4A, Name: "swing", Parent: "D00"},
	{Code: "D08", Hex: 0x50, Name: "jazz pop", Parent: "D00"},

	{Code: "E00", Hex: 0x60, Name: "reggae", Related: []string{"E01"}},
	{Code: "E01", Hex: 0x61, Name: "dub", Parent: "E00", Related: []string{"E00"}},
	{Code: "E15", Hex: 0x6F, Name: "ska", Related: []string{"A16"}},

	{Code: "F00", Hex: 0x76, Name: "r&b", Related: []string{"F01", "F18"}},
	{Code: "F01", Hex: 0x77, Name: "soul", Parent: "F00", Related: []string{"F00"}},
	{Code: "F02", Hex: 0x78, Name: "gospel", Parent: "F00"},
	{Code: "F18", Hex: 0x88, Name: "funk", Parent: "F00"},

	{Code: "G00", Hex: 0x8C, Name: "country", Related: []string{"A20"}},

	{Code: "H00", Hex: 0xA2, Name: "blues", Related: []string{"A21"}},

	{Code: "I00", Hex: 0xB8, Name: "hip-hop"},

	{Code: "J00", Hex: 0xD0, Name: "electronic"},
	{Code: "J01", Hex: 0xD1, Name: "edm", Parent: "J00"},
	{Code: "J02", Hex: 0xD2, Name: "house", Parent: "J00"},
	{Code: "J03", Hex: 0xD3, Name: "techno", Parent: "J00"},
	{Code: "J04", Hex: 0xD4, Name: "disco", Parent: "J00"},

	{Code: "K00", Hex: 0xE8, Name: "classical"},
	{Code: "K01", Hex: 0xE9, Name: "orchestral", Parent: "K00"},
	{Code: "K02", Hex: 0xEA, Name: "opera", Parent: "K00"},
	{Code: "K07", Hex: 0xEF, Name: "piano", Parent: "K00"},
}
