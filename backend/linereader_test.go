package backend

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func expectToRead(t *testing.T, reader io.Reader, expected []byte) {
	t.Helper()
	var scratch [1024]byte
	n, err := reader.Read(scratch[:])
	if err != nil {
		t.Errorf("expected read to succeed, got: %v", err)
	} else if !bytes.Equal(scratch[:n], expected) {
		t.Errorf("expected read to yield %q, got: %q", expected, scratch[:n])
	}
}

func expectReadEOF(t *testing.T, reader io.Reader) {
	t.Helper()
	var scratch [1024]byte
	n, err := reader.Read(scratch[:])
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected read to give EOF, got: %v", err)
	} else if n != 0 {
		t.Errorf("expected read to read nothing, read %q", scratch[:n])
	}
}

func TestLineReader(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	buf.WriteString("Q1, 10\n")
	buf.WriteString("Q2, 20\n")
	l := NewLineReader(buf)
	expectToRead(t, l, []byte("Q1, 10\n"))
	expectToRead(t, l, []byte("Q2, 20\n"))
	// A partially written row stays buffered until its newline lands.
	buf.WriteString("Q3,")
	expectReadEOF(t, l)
	buf.WriteString(" 30\n")
	expectToRead(t, l, []byte("Q3, 30\n"))
	buf.WriteString("Q4")
	expectReadEOF(t, l)
	buf.WriteString(", 4")
	expectReadEOF(t, l)
	buf.WriteString("0\nQ5")
	expectToRead(t, l, []byte("Q4, 40\n"))
}
