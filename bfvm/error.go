package bfvm

import (
	"errors"
	"fmt"
)

var ErrUnmatchedBracket = errors.New("unmatched bracket")

type UnmatchedBracketError struct {
	Pos     int
	Bracket byte
}

func (u *UnmatchedBracketError) Error() string {
	return fmt.Sprintf("unmatched '%c' at position %d", u.Bracket, u.Pos)
}

func (u *UnmatchedBracketError) Unwrap() error {
	return ErrUnmatchedBracket
}
