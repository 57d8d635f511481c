package byteslice

import (
	"bufio"
	"io"
)

// Mask is the byte every matched byte is replaced with.
const Mask = '*'

// CensorInPlace replaces every non-overlapping match of needle in buf with
// Mask and returns the number of matches.
func CensorInPlace(buf, needle []byte) int {
	indexes := IndexAll(buf, needle)
	for _, idx := range indexes {
		for j := idx; j < idx+len(needle); j++ {
			buf[j] = Mask
		}
	}
	return len(indexes)
}

// Censor returns a censored copy of buf. The original slice is not modified.
func Censor(buf, needle []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	CensorInPlace(out, needle)
	return out
}

type byteWriter interface {
	io.Writer
	WriteByte(c byte) error
}

// CensorTo scans haystack and writes it to w with every match of needle
// replaced by a run of Mask bytes, in scan order. It returns the number of
// bytes written, which equals len(haystack) on success.
func CensorTo(w io.Writer, haystack, needle []byte) (int, error) {
	n, _, err := CensorToCount(w, haystack, needle)
	return n, err
}

// CensorToCount is CensorTo that also returns the number of matches masked.
// Writers that do not implement io.ByteWriter are wrapped in a bufio.Writer
// which is flushed before returning.
func CensorToCount(w io.Writer, haystack, needle []byte) (int, int, error) {
	if len(needle) == 0 {
		n, err := w.Write(haystack)
		return n, 0, err //nolint:wrapcheck
	}

	if bw, ok := w.(byteWriter); ok {
		return censorTo(bw, haystack, needle)
	}

	buffered := bufio.NewWriter(w)
	n, matches, err := censorTo(buffered, haystack, needle)
	if err != nil {
		return n - buffered.Buffered(), matches, err
	}
	if err := buffered.Flush(); err != nil {
		return n - buffered.Buffered(), matches, err //nolint:wrapcheck
	}
	return n, matches, nil
}

func censorTo(w byteWriter, haystack, needle []byte) (int, int, error) {
	var written, matches int
	for i := 0; i < len(haystack); {
		if matchAt(haystack, needle, i) {
			for range needle {
				if err := w.WriteByte(Mask); err != nil {
					return written, matches, err //nolint:wrapcheck
				}
				written++
			}
			matches++
			i += len(needle)
			continue
		}
		if err := w.WriteByte(haystack[i]); err != nil {
			return written, matches, err //nolint:wrapcheck
		}
		written++
		i++
	}
	return written, matches, nil
}
