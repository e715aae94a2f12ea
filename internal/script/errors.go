package script

import "errors"

var (
	ErrNilLine     = errors.New("nil line")
	ErrUnknownLine = errors.New("unknown line type")
	ErrInvalidUTF8 = errors.New("line is not valid UTF-8")
)
