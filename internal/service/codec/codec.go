package codec

//go:generate $MOCKGEN -source=codec.go -destination=mocks/codec_mock.go

import (
	"fmt"
	"strconv"
	"strings"

	basecodec "github.com/oshokin/easycodec/codec"
	"github.com/oshokin/easycodec/codec/base32"
	"github.com/oshokin/easycodec/codec/base62"
	"github.com/oshokin/easycodec/codec/hex"
	"github.com/oshokin/easycodec/codec/morse"
	"github.com/oshokin/easycodec/codec/rot"
)

// Direction tells whether items are encoded or decoded.
type Direction string

const (
	// DirectionEncode converts plain input into the scheme's text form.
	DirectionEncode Direction = "encode"
	// DirectionDecode converts the scheme's text form back into plain output.
	DirectionDecode Direction = "decode"
)

// Scheme names understood by the registry.
const (
	SchemeBase32 = "base32"
	SchemeBase62 = "base62"
	SchemeHex    = "hex"
	SchemeRot    = "rot"
	SchemeMorse  = "morse"
)

// Codec adapts an encoding scheme to text-in, text-out items.
type Codec interface {
	// Name returns the scheme name the codec is registered under.
	Name() string
	// Description returns a one-line human-readable summary of the scheme.
	Description() string
	// Encode converts a plain item into the scheme's text form.
	Encode(input string) (string, error)
	// Decode converts the scheme's text form back into a plain item.
	Decode(input string) (string, error)
}

// Base32Codec treats items as raw bytes and encodes them with RFC 4648 Base32.
type Base32Codec struct{}

// Name implements Codec.
func (Base32Codec) Name() string { return SchemeBase32 }

// Description implements Codec.
func (Base32Codec) Description() string { return "RFC 4648 Base32 of raw bytes, '=' padded" }

// Encode implements Codec.
func (Base32Codec) Encode(input string) (string, error) {
	return base32.Encode([]byte(input)), nil
}

// Decode implements Codec.
func (Base32Codec) Decode(input string) (string, error) {
	decoded, err := base32.Decode(input)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// Base62Codec treats items as decimal integers and encodes them in base 62.
type Base62Codec struct{}

// Name implements Codec.
func (Base62Codec) Name() string { return SchemeBase62 }

// Description implements Codec.
func (Base62Codec) Description() string { return "base-62 numeral of a non-negative decimal integer" }

// Encode implements Codec.
func (Base62Codec) Encode(input string) (string, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a 64-bit decimal integer", basecodec.ErrInvalidArgument, input)
	}

	return base62.Encode(n)
}

// Decode implements Codec.
func (Base62Codec) Decode(input string) (string, error) {
	n, err := base62.Decode(input)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n, 10), nil
}

// HexCodec treats items as raw bytes and encodes them as hexadecimal digits.
type HexCodec struct {
	// lowercase selects lower-case output digits.
	lowercase bool
}

// NewHexCodec creates a HexCodec.
func NewHexCodec(lowercase bool) *HexCodec {
	return &HexCodec{lowercase: lowercase}
}

// Name implements Codec.
func (*HexCodec) Name() string { return SchemeHex }

// Description implements Codec.
func (*HexCodec) Description() string { return "hexadecimal digits of raw bytes" }

// Encode implements Codec.
func (c *HexCodec) Encode(input string) (string, error) {
	return hex.Encode([]byte(input), c.lowercase), nil
}

// Decode implements Codec.
func (*HexCodec) Decode(input string) (string, error) {
	decoded, err := hex.Decode(input)
	if err != nil {
		return "", err
	}

	return string(decoded), nil
}

// RotCodec applies the rotation cipher with a fixed shift.
type RotCodec struct {
	// shift is the number of positions letters are rotated by.
	shift int
}

// NewRotCodec creates a RotCodec.
func NewRotCodec(shift int) *RotCodec {
	return &RotCodec{shift: shift}
}

// Name implements Codec.
func (*RotCodec) Name() string { return SchemeRot }

// Description implements Codec.
func (c *RotCodec) Description() string {
	return fmt.Sprintf("rotation cipher over A-Z, shift %d", c.shift)
}

// Encode implements Codec.
func (c *RotCodec) Encode(input string) (string, error) {
	return rot.Encrypt(input, c.shift), nil
}

// Decode implements Codec.
func (c *RotCodec) Decode(input string) (string, error) {
	return rot.Decrypt(input, c.shift), nil
}

// MorseCodec converts items to and from International Morse code.
type MorseCodec struct{}

// Name implements Codec.
func (MorseCodec) Name() string { return SchemeMorse }

// Description implements Codec.
func (MorseCodec) Description() string { return "International Morse code, '/' between words" }

// Encode implements Codec.
func (MorseCodec) Encode(input string) (string, error) {
	return morse.Encode(input), nil
}

// Decode implements Codec.
func (MorseCodec) Decode(input string) (string, error) {
	return morse.Decode(input)
}
