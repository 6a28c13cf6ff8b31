package codec

import "errors"

// ErrInvalidUTF8 is returned by Reader.ReadString when a length-prefixed
// string's bytes do not form valid UTF-8.
var ErrInvalidUTF8 = errors.New("codec: string bytes are not valid utf-8")
