// Package codec holds the error taxonomy shared by the binary-to-text codecs
// in its subpackages (base32, base62, hex, rot, morse).
// Every codec failure wraps one of the sentinels below, so callers can use errors.Is
// without depending on a particular codec.
package codec
