package stream

import (
	"hash"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/blake2b"
)

// DigestWriter is a pass-through io.Writer that maintains a BLAKE2b-256
// digest of everything written. The digest never touches the wire; it lets
// callers layer integrity checks outside the protocol.
type DigestWriter struct {
	w io.Writer
	h hash.Hash
}

// NewDigestWriter wraps w into a DigestWriter.
func NewDigestWriter(w io.Writer) (*DigestWriter, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to init digest")
	}

	return &DigestWriter{w: w, h: h}, nil
}

// Write forwards p to the underlying writer and folds the written prefix
// into the digest.
func (d *DigestWriter) Write(p []byte) (n int, err error) {
	n, err = d.w.Write(p)
	// hash.Hash.Write never returns an error
	d.h.Write(p[:n])

	return n, err
}

// Sum returns the digest of everything written so far.
func (d *DigestWriter) Sum() []byte {
	return d.h.Sum(nil)
}

// DigestReader is a pass-through io.Reader that maintains a BLAKE2b-256
// digest of everything read, the counterpart of DigestWriter.
type DigestReader struct {
	r io.Reader
	h hash.Hash
}

// NewDigestReader wraps r into a DigestReader.
func NewDigestReader(r io.Reader) (*DigestReader, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return nil, errors.Wrap(err, "unable to init digest")
	}

	return &DigestReader{r: r, h: h}, nil
}

// Read reads from the underlying reader and folds the read bytes into the
// digest.
func (d *DigestReader) Read(p []byte) (n int, err error) {
	n, err = d.r.Read(p)
	d.h.Write(p[:n])

	return n, err
}

// Sum returns the digest of everything read so far.
func (d *DigestReader) Sum() []byte {
	return d.h.Sum(nil)
}
