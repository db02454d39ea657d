package bigint_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"bigint"
)

func TestParseRoundTrip(t *testing.T) {
	type TC struct {
		name string
		in   string
		want string
	}

	tcs := []TC{
		{name: "zero", in: "0", want: "0"},
		{name: "minus zero", in: "-0", want: "0"},
		{name: "padded zero", in: "00000000000000", want: "0"},
		{name: "leading zeros", in: "007", want: "7"},
		{name: "negative leading zeros", in: "-0000000123", want: "-123"},
		{name: "single group", in: "9999999", want: "9999999"},
		{name: "group boundary", in: "10000000", want: "10000000"},
		{name: "zero interior group", in: "100000000000000", want: "100000000000000"},
		{name: "canonical", in: "99999999999999999999999999", want: "99999999999999999999999999"},
		{name: "negative canonical", in: "-123456789123456789", want: "-123456789123456789"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := bigint.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, v.String())

			// The canonical form must parse back to an equal value.
			again, err := bigint.Parse(v.String())
			require.NoError(t, err)
			require.True(t, v.Equal(again))
		})
	}
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		name string
		in   string
	}

	tcs := []TC{
		{name: "empty", in: ""},
		{name: "bare minus", in: "-"},
		{name: "plus sign", in: "+5"},
		{name: "interior letter", in: "12a3"},
		{name: "leading space", in: " 5"},
		{name: "trailing space", in: "5 "},
		{name: "double minus", in: "--5"},
		{name: "decimal point", in: "1.5"},
		{name: "underscores", in: "1_000"},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			_, err := bigint.Parse(tc.in)

			require.Error(t, err)
			require.True(t, bigint.ErrParse.Has(err))
			require.True(t, bigint.Error.Has(err))
		})
	}
}

func TestMustParse(t *testing.T) {
	require.Equal(t, "42", bigint.MustParse("42").String())
	require.Panics(t, func() { bigint.MustParse("nope") })
}

func TestAppend(t *testing.T) {
	buf := []byte("x=")
	buf = bigint.MustParse("-123456789").Append(buf)

	require.Equal(t, "x=-123456789", string(buf))
}

func TestFloat64(t *testing.T) {
	require.Equal(t, 0.0, bigint.New(0).Float64())
	require.Equal(t, 123.0, bigint.New(123).Float64())
	require.Equal(t, -9999999.0, bigint.New(-9999999).Float64())

	// Exact while within the float64 integer range.
	require.Equal(t, 1e22, bigint.MustParse("10000000000000000000000").Float64())

	// Approximate beyond it.
	require.InEpsilon(t, 1e26, bigint.MustParse("99999999999999999999999999").Float64(), 1e-9)
	require.InEpsilon(t, -1e26, bigint.MustParse("-99999999999999999999999999").Float64(), 1e-9)
}

func TestInt64(t *testing.T) {
	type TC struct {
		name string
		in   string
		want int64
		bad  bool
	}

	tcs := []TC{
		{name: "zero", in: "0", want: 0},
		{name: "negative", in: "-123456789123456789", want: -123456789123456789},
		{name: "max", in: "9223372036854775807", want: math.MaxInt64},
		{name: "min", in: "-9223372036854775808", want: math.MinInt64},
		{name: "max plus one", in: "9223372036854775808", bad: true},
		{name: "min minus one", in: "-9223372036854775809", bad: true},
		{name: "uint64 range", in: "18446744073709551616", bad: true},
		{name: "far out", in: "99999999999999999999999999", bad: true},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			v, err := bigint.MustParse(tc.in).Int64()
			if tc.bad {
				require.Error(t, err)
				require.True(t, bigint.ErrInvalidInput.Has(err))

				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, v)
		})
	}
}
