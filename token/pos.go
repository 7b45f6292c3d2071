package token

import "strconv"

// Pos locates a token in the scanner input as a byte offset.
// The scanner does not keep the input around, so line/column
// reconstruction is up to the caller.
type Pos int64

func (p Pos) String() string {
	return "offset " + strconv.FormatInt(int64(p), 10)
}
