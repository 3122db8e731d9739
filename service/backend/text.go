package backend

import (
	"encoding/base64"
	"strings"

	"github.com/viant/namepool/model/types"
)

// Text transport errors.
var (
	ErrTextLength   = types.NewError(types.KindFormat, "invalid base64 length")
	ErrTextAlphabet = types.NewError(types.KindFormat, "invalid base64 character")
	ErrTextPadding  = types.NewError(types.KindFormat, "invalid base64 padding")
)

// EncodeText returns blob as standard padded base64.
func EncodeText(blob []byte) string {
	return base64.StdEncoding.EncodeToString(blob)
}

// DecodeText strictly decodes standard padded base64. ASCII whitespace is
// ignored; the remaining text must be a multiple of 4 long, use the standard
// alphabet, and carry at most two '=' only at the very end.
func DecodeText(text string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, text)
	if len(compact)%4 != 0 {
		return nil, ErrTextLength
	}
	padding := len(compact) - len(strings.TrimRight(compact, "="))
	for i := 0; i < len(compact)-padding; i++ {
		if !isAlphabet(compact[i]) {
			if compact[i] == '=' {
				return nil, ErrTextPadding
			}
			return nil, ErrTextAlphabet
		}
	}
	if padding > 2 {
		return nil, ErrTextPadding
	}
	ret, err := base64.StdEncoding.Strict().DecodeString(compact)
	if err != nil {
		// alphabet and padding position were checked above, what is left
		// are non-zero trailing bits in the last quantum
		return nil, types.WrapError(types.KindFormat, ErrTextPadding.Message, err)
	}
	return ret, nil
}

func isAlphabet(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '+', c == '/':
		return true
	}
	return false
}
