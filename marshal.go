package bigint

import (
	"encoding/binary"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Int{}
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// MarshalText implements encoding.TextMarshaler using the canonical
// decimal string.
func (x Int) MarshalText() (text []byte, err error) {
	return x.Append(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (x *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*x = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The layout is a sign
// byte (1 = negative) followed by the digit groups, most significant
// first, each a big-endian uint32. Zero encodes as the single byte 0.
func (x Int) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 1+4*len(x.mag))
	if x.neg {
		data[0] = 1
	}
	for i, off := len(x.mag)-1, 1; i >= 0; i, off = i-1, off+4 {
		binary.BigEndian.PutUint32(data[off:], x.mag[i])
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Inputs that do
// not decode to a canonical value (groups out of range, leading zero
// groups, negative zero) fail with ErrInvalidInput.
func (x *Int) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 || (len(data)-1)%4 != 0 {
		return ErrInvalidInput.New("binary length %d", len(data))
	}

	var neg bool
	switch data[0] {
	case 0:
	case 1:
		neg = true
	default:
		return ErrInvalidInput.New("sign byte %#02x", data[0])
	}

	n := (len(data) - 1) / 4
	if n == 0 {
		if neg {
			return ErrInvalidInput.New("negative zero")
		}
		*x = Int{}
		return nil
	}

	mag := make([]uint32, n)
	for i, off := n-1, 1; i >= 0; i, off = i-1, off+4 {
		g := binary.BigEndian.Uint32(data[off:])
		if g >= GroupBase {
			return ErrInvalidInput.New("group %d out of range", g)
		}
		mag[i] = g
	}
	if mag[n-1] == 0 {
		return ErrInvalidInput.New("leading zero group")
	}
	*x = Int{neg: neg, mag: mag}

	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, encoding the canonical
// decimal string.
func (x Int) EncodeMsgpack(enc *msgpack.Encoder) (err error) {
	return enc.EncodeString(x.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (x *Int) DecodeMsgpack(dec *msgpack.Decoder) (err error) {
	s, err := dec.DecodeString()
	if err != nil {
		return Error.Wrap(err)
	}

	v, err := Parse(s)
	if err != nil {
		return err
	}
	*x = v

	return nil
}
