package codec

import (
	"bytes"
	"io"

	"github.com/Noth1ngLol/Llol/internal/record"
	"github.com/pkg/errors"
)

// File is a decoded GGUF metadata block.
type File struct {
	Header  Header
	Records []record.Record
}

// Decode reads a header and its metadata records from r, which must be
// positioned at offset 0. Any failure aborts the whole decode; no partial
// record list is returned.
func Decode(r io.Reader) (*File, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	// The count comes from the file, so it only caps the initial allocation.
	capacity := h.MetadataCount
	if capacity > 1024 {
		capacity = 1024
	}
	records := make([]record.Record, 0, capacity)

	for i := uint64(0); i < h.MetadataCount; i++ {
		rec, err := record.DecodeRecord(r)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d of %d", i, h.MetadataCount)
		}
		records = append(records, *rec)
	}

	return &File{Header: *h, Records: records}, nil
}

// Encode writes records in file order behind a normalized header: version 1
// and a tensor count of zero.
func Encode(w io.Writer, records []record.Record) error {
	h := Header{
		Magic:         Magic,
		Version:       Version,
		TensorCount:   0,
		MetadataCount: uint64(len(records)),
	}
	if err := EncodeHeader(w, &h); err != nil {
		return err
	}

	for i := range records {
		if err := record.EncodeRecord(w, &records[i]); err != nil {
			return err
		}
	}

	return nil
}

// EncodeToBytes encodes into memory so a failure never reaches the
// destination file.
func EncodeToBytes(records []record.Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
