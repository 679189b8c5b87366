package stream

import (
	"bufio"
	"io"
	"regexp"
)

// LineFilter returns an io.Reader yielding only the lines of r that re
// matches, line endings included. Lines are matched without their ending.
//
//	io.Copy(os.Stdout, stream.LineFilter(input, re))
func LineFilter(r io.Reader, re *regexp.Regexp) io.Reader {
	return &filterReader{src: bufio.NewReader(r), re: re}
}

type filterReader struct {
	src *bufio.Reader
	re  *regexp.Regexp
	out []byte
	err error
}

func (f *filterReader) Read(p []byte) (int, error) {
	for len(f.out) == 0 {
		if f.err != nil {
			return 0, f.err
		}
		line, err := f.src.ReadBytes('\n')
		if len(line) > 0 && f.re.Match(trimLineEnding(line)) {
			f.out = line
		}
		f.err = err
	}

	n := copy(p, f.out)
	f.out = f.out[n:]
	return n, nil
}
