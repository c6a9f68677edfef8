package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/korean"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

func newTestReader(t *testing.T) Reader {
	t.Helper()
	return New(logger.New("error"))
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadUTF8(t *testing.T) {
	want := "회의 녹취록입니다.\n안건: 출시 일정"
	path := writeFile(t, "utf8.txt", []byte(want))

	got, err := newTestReader(t).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestReadEUCKR(t *testing.T) {
	want := "안녕하세요 회의를 시작합니다"
	encoded, err := korean.EUCKR.NewEncoder().Bytes([]byte(want))
	if err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, "euckr.txt", encoded)

	got, err := newTestReader(t).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != want {
		t.Errorf("Read() = %q, want %q", got, want)
	}
}

func TestReadUndecodable(t *testing.T) {
	// 0xFF is not a valid lead byte in UTF-8 or in the Korean code pages
	path := writeFile(t, "binary.txt", []byte{0xFF, 0xFF, 0xFF, 0x00})

	_, err := newTestReader(t).Read(path)
	if err == nil {
		t.Fatal("Read() should fail for undecodable bytes")
	}

	var decErr *DecodingError
	if !errors.As(err, &decErr) {
		t.Fatalf("error = %T, want *DecodingError", err)
	}
	if decErr.Path != path {
		t.Errorf("Path = %v, want %v", decErr.Path, path)
	}
	if len(decErr.Encodings) != 3 {
		t.Errorf("Encodings = %v, want 3 entries", decErr.Encodings)
	}
	if !strings.Contains(decErr.Error(), "utf-8") {
		t.Errorf("Error() = %q, should name tried encodings", decErr.Error())
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := newTestReader(t).Read(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Read() should fail for missing file")
	}

	var decErr *DecodingError
	if errors.As(err, &decErr) {
		t.Error("I/O failure must not be reported as a DecodingError")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)

	got, err := newTestReader(t).Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != "" {
		t.Errorf("Read() = %q, want empty", got)
	}
}
