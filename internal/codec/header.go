package codec

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/pkg/errors"
)

// Magic (4) + Version (4) + TensorCount (8) + MetadataCount (8)
const HeaderSizeBytes = 24

// Version written on every save, whatever version was read.
const Version uint32 = 1

// Magic identifies a GGUF file at offset 0.
var Magic = [4]byte{'G', 'G', 'U', 'F'}

// Header is the fixed prefix of a GGUF file.
//
// TensorCount is reported but never interpreted: tensor descriptors are not
// read, and saving always writes zero.
type Header struct {
	Magic         [4]byte
	Version       uint32
	TensorCount   uint64
	MetadataCount uint64
}

func EncodeHeader(w io.Writer, h *Header) error {
	if _, err := w.Write(h.Magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Version); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.TensorCount); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, h.MetadataCount)
}

func DecodeHeader(r io.Reader) (*Header, error) {
	h := &Header{}

	if err := record.ReadFull(r, h.Magic[:]); err != nil {
		return nil, errors.Wrap(err, "magic")
	}
	if !bytes.Equal(h.Magic[:], Magic[:]) {
		return nil, errors.Wrapf(record.ErrInvalidFormat, "bad magic %q", h.Magic[:])
	}

	var err error
	if h.Version, err = record.ReadUint32(r); err != nil {
		return nil, errors.Wrap(err, "version")
	}
	if h.TensorCount, err = record.ReadUint64(r); err != nil {
		return nil, errors.Wrap(err, "tensor count")
	}
	if h.MetadataCount, err = record.ReadUint64(r); err != nil {
		return nil, errors.Wrap(err, "metadata count")
	}

	return h, nil
}
