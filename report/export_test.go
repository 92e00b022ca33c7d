package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteCSV_RoundTrip(t *testing.T) {
	entries := []TagCount{
		{Tag: "golang", Count: 12},
		{Tag: "fediverse", Count: 5},
		{Tag: "caturday", Count: 1},
	}
	path := filepath.Join(t.TempDir(), "tags.csv")

	if err := WriteCSV(path, entries, ';', EncodingUTF8); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open export: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to reparse export: %v", err)
	}

	want := [][]string{
		{"Hashtag", "Count"},
		{"golang", "12"},
		{"fediverse", "5"},
		{"caturday", "1"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("reparsed rows = %v, want %v", rows, want)
	}
}

func TestWriteCSV_UTF8SigWritesBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.csv")
	if err := WriteCSV(path, []TagCount{{Tag: "a", Count: 1}}, ',', EncodingUTF8Sig); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("utf-8-sig export should start with a UTF-8 BOM")
	}
	if !bytes.Contains(data, []byte("Hashtag,Count")) {
		t.Error("export is missing the header row")
	}
}

func TestWriteCSV_SingleByteCharsets(t *testing.T) {
	tests := []struct {
		name    string
		charset string
	}{
		{name: "windows-1252", charset: EncodingWindows1252},
		{name: "iso-8859-15", charset: EncodingISO885915},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tags.csv")
			entries := []TagCount{{Tag: "café", Count: 2}}
			if err := WriteCSV(path, entries, ',', tt.charset); err != nil {
				t.Fatalf("WriteCSV() error = %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read export: %v", err)
			}
			// 'é' is a single 0xE9 byte in both charsets.
			if !bytes.Contains(data, []byte{'c', 'a', 'f', 0xE9}) {
				t.Errorf("export bytes %q do not contain single-byte caf\\xe9", data)
			}
		})
	}
}

func TestWriteCSV_UnencodableToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.csv")
	entries := []TagCount{{Tag: "日本語", Count: 3}}

	err := WriteCSV(path, entries, ',', EncodingWindows1252)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("WriteCSV() error = %v, want ErrEncoding", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("failed export should not leave an output file behind")
	}
}

func TestWriteCSV_UnknownCharset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.csv")
	err := WriteCSV(path, nil, ',', "ebcdic")
	if !errors.Is(err, ErrUnknownEncoding) {
		t.Errorf("WriteCSV() error = %v, want ErrUnknownEncoding", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("unknown charset should be rejected before the output file is created")
	}
}

func TestWriteCSV_IOErrorIsNotEncodingError(t *testing.T) {
	// A bad destination path fails on the write, not the encode, and must
	// not surface as ErrEncoding (which would trigger the try-another-
	// encoding suggestion).
	path := filepath.Join(t.TempDir(), "missing-dir", "tags.csv")
	err := WriteCSV(path, []TagCount{{Tag: "a", Count: 1}}, ',', EncodingWindows1252)
	if err == nil {
		t.Fatal("WriteCSV() to a missing directory should fail")
	}
	if errors.Is(err, ErrEncoding) {
		t.Errorf("WriteCSV() error = %v, should not be ErrEncoding", err)
	}
}
