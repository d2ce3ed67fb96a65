package store

import (
	"io"
	"os"

	"github.com/zeebo/errs"

	"github.com/calebcase/digitring/decimal"
	"github.com/calebcase/digitring/ring"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("store")

// Encoder writes ring values to a stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// Encode writes the ring's decimal value string.
func (e *Encoder) Encode(r *ring.Ring) (err error) {
	defer Error.WrapP(&err)

	_, err = io.WriteString(e.w, r.DecimalString())

	return err
}

// Decoder reads ring values from a stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r: r,
	}
}

// Decode reads a decimal value string and returns a ring holding it in the
// default base.
func (d *Decoder) Decode() (_ *ring.Ring, err error) {
	defer Error.WrapP(&err)

	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}

	v, err := decimal.Parse(string(data))
	if err != nil {
		return nil, err
	}

	return ring.NewFromValue(v, ring.DefaultBase)
}

// Save writes the ring's decimal value string to a file.
func Save(path string, r *ring.Ring) (err error) {
	defer Error.WrapP(&err)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()

	return NewEncoder(f).Encode(r)
}

// Load reads a decimal value string from a file and returns a ring holding
// it in the default base.
func Load(path string) (_ *ring.Ring, err error) {
	defer Error.WrapP(&err)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewDecoder(f).Decode()
}
