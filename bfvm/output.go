package bfvm

import (
	"bufio"
	"io"
	"unicode/utf8"
)

type output interface {
	WriteByte(byte) error
	Flush() error
}

func newOutput(w io.Writer, holdUTF8 bool) output {
	buffered := bufio.NewWriter(w)
	if !holdUTF8 {
		return buffered
	}
	return &utf8Output{
		w: buffered,
	}
}

// utf8Output holds back incomplete UTF-8 sequences.
// Bytes that can never become valid are written as they are.
type utf8Output struct {
	w       *bufio.Writer
	pending []byte
}

func (u *utf8Output) WriteByte(b byte) error {
	u.pending = append(u.pending, b)
	if !utf8.FullRune(u.pending) {
		return nil
	}
	_, err := u.w.Write(u.pending)
	u.pending = u.pending[:0]
	return err
}

func (u *utf8Output) Flush() error {
	if len(u.pending) > 0 {
		if _, err := u.w.Write(u.pending); err != nil {
			return err
		}
		u.pending = u.pending[:0]
	}
	return u.w.Flush()
}
