package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Charset names accepted by WriteCSV.
const (
	EncodingUTF8Sig     = "utf-8-sig" // UTF-8 with a byte order mark, for Excel
	EncodingUTF8        = "utf-8"
	EncodingISO885915   = "iso-8859-15"
	EncodingWindows1252 = "windows-1252"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encodings lists the supported charset names.
func Encodings() []string {
	return []string{EncodingUTF8Sig, EncodingUTF8, EncodingISO885915, EncodingWindows1252}
}

// WriteCSV writes every entry to path as a delimited table: a Hashtag/Count
// header row, then one row per entry in the given order. The table is built
// and charset-encoded in memory before the file is touched, so an unknown
// charset or a token the single-byte charsets cannot represent (ErrEncoding)
// leaves no output file behind.
func WriteCSV(path string, entries []TagCount, delimiter rune, charset string) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = delimiter
	if err := cw.Write([]string{"Hashtag", "Count"}); err != nil {
		return err
	}
	for _, entry := range entries {
		if err := cw.Write([]string{entry.Tag, strconv.Itoa(entry.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	data := buf.Bytes()
	switch charset {
	case EncodingUTF8:
	case EncodingUTF8Sig:
		data = append(append([]byte{}, utf8BOM...), data...)
	case EncodingISO885915:
		encoded, _, err := transform.Bytes(charmap.ISO8859_15.NewEncoder(), data)
		if err != nil {
			return fmt.Errorf("%w (%s): %v", ErrEncoding, charset, err)
		}
		data = encoded
	case EncodingWindows1252:
		encoded, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), data)
		if err != nil {
			return fmt.Errorf("%w (%s): %v", ErrEncoding, charset, err)
		}
		data = encoded
	default:
		return fmt.Errorf("%w: %s", ErrUnknownEncoding, charset)
	}

	return os.WriteFile(path, data, 0644)
}
