package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwansa/consoleplug/internal/encoding"
)

func decode(t *testing.T, input []byte) string {
	t.Helper()

	r, err := encoding.UTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)

	return string(got)
}

func TestUTF8Reader_Passthrough(t *testing.T) {
	input := "Product,Qty,Price\nPokémon Scarlet,4,55.00\n"

	assert.Equal(t, input, decode(t, []byte(input)))
}

func TestUTF8Reader_StripsUTF8BOM(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, "Product,Qty\n"...)

	assert.Equal(t, "Product,Qty\n", decode(t, input))
}

func TestUTF8Reader_UTF16LE(t *testing.T) {
	// "Qty\n" as UTF-16 little-endian with BOM.
	input := []byte{0xFF, 0xFE, 'Q', 0x00, 't', 0x00, 'y', 0x00, '\n', 0x00}

	assert.Equal(t, "Qty\n", decode(t, input))
}

func TestUTF8Reader_Windows1252(t *testing.T) {
	// "Pokémon" with é as Windows-1252 0xE9.
	input := []byte{'P', 'o', 'k', 0xE9, 'm', 'o', 'n', '\n'}

	assert.Equal(t, "Pokémon\n", decode(t, input))
}

func TestUTF8Reader_Empty(t *testing.T) {
	assert.Equal(t, "", decode(t, nil))
}
