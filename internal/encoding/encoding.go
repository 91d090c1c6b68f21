// Package encoding normalizes the byte soup suppliers export. Price sheets
// arrive as UTF-8, UTF-16 with a BOM, or some Windows-1252 variant depending
// on the spreadsheet tool that produced them.
package encoding

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// sniffLen bounds how much of the stream the detector inspects.
const sniffLen = 4096

type bom struct {
	prefix  []byte
	decoder func() *encoding.Decoder
}

var boms = []bom{
	{[]byte{0xEF, 0xBB, 0xBF}, nil}, // UTF-8, strip and pass through
	{[]byte{0xFF, 0xFE}, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder},
	{[]byte{0xFE, 0xFF}, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder},
}

// UTF8Reader wraps r in a reader that yields UTF-8 regardless of the
// source encoding. A BOM wins outright, then valid UTF-8 passes through
// untouched, then chardet gets a vote, and anything still undecided is
// treated as Windows-1252 since that is what legacy spreadsheet exports
// overwhelmingly turn out to be.
func UTF8Reader(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)

	head, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("sniffing input: %w", err)
	}

	for _, b := range boms {
		if !bytes.HasPrefix(head, b.prefix) {
			continue
		}

		if b.decoder == nil {
			_, _ = br.Discard(len(b.prefix))
			return br, nil
		}

		return transform.NewReader(br, b.decoder()), nil
	}

	if utf8.Valid(head) {
		return br, nil
	}

	if guess, err := chardet.NewTextDetector().DetectBest(head); err == nil {
		if cm := legacyCharmap(guess.Charset); cm != nil {
			return transform.NewReader(br, cm.NewDecoder()), nil
		}

		if guess.Charset == "UTF-8" {
			return br, nil
		}
	}

	return transform.NewReader(br, charmap.Windows1252.NewDecoder()), nil
}

func legacyCharmap(charset string) *charmap.Charmap {
	switch charset {
	case "ISO-8859-1", "windows-1252":
		return charmap.Windows1252
	case "ISO-8859-15":
		return charmap.ISO8859_15
	}

	return nil
}
