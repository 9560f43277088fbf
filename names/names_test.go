package names

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hazae41/wasm/wasm"
)

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		name  string
		input *Names
	}{
		{name: "empty", input: &Names{}},
		{name: "module name only", input: &Names{ModuleName: "simple"}},
		{
			name: "function names",
			input: &Names{
				ModuleName:    "simple",
				FunctionNames: map[wasm.Index]string{0: "main", 2: "helper"},
			},
		},
		{
			name: "local names",
			input: &Names{
				FunctionNames: map[wasm.Index]string{0: "main"},
				LocalNames: map[wasm.Index]map[wasm.Index]string{
					0: {0: "x", 1: "y"},
				},
			},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			encoded := Encode(tc.input)
			decoded, err := Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, tc.input, decoded)
		})
	}
}

func TestDecodeSkipsUnknownSubsection(t *testing.T) {
	// subsection 9 (unknown) of length 2, then a valid module-name
	// subsection; the unknown one must be skipped rather than failing.
	data := []byte{
		9, 0x02, 0xAA, 0xBB,
		subsectionModuleName, 0x02, 0x01, 'x',
	}
	out, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, "x", out.ModuleName)
}

func TestDecodeOverCustomSection(t *testing.T) {
	cs := wasm.CustomSection{Name: SectionName, Data: Encode(&Names{ModuleName: "m"})}
	require.Equal(t, SectionName, cs.Name)

	out, err := Decode(cs.Data)
	require.NoError(t, err)
	require.Equal(t, "m", out.ModuleName)
}
