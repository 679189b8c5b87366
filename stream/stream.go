// Package stream matches compiled patterns against line-oriented input of
// any size, holding one line in memory at a time.
//
//	file, _ := os.Open("access.log")
//	defer file.Close()
//
//	err := stream.FindLines(file, re, stream.DefaultConfig(), func(m stream.Match) bool {
//		fmt.Printf("%d:%d %s\n", m.Line, m.Start, m.Text[m.Start:m.End])
//		return true // continue
//	})
package stream

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
)

// Config configures line scanning.
type Config struct {
	// BufferSize is the initial read buffer size.
	// Default: 64KB.
	BufferSize int

	// MaxLineLength is the longest line accepted; longer lines fail the scan
	// with bufio.ErrTooLong.
	// Default: 1MB.
	MaxLineLength int
}

// DefaultConfig returns a Config with the default sizes.
func DefaultConfig() Config {
	return Config{
		BufferSize:    64 * 1024,
		MaxLineLength: 1024 * 1024,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = d.BufferSize
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = d.MaxLineLength
	}
	if c.BufferSize > c.MaxLineLength {
		c.BufferSize = c.MaxLineLength
	}
	return c
}

// Match is the leftmost match on one line.
type Match struct {
	// Line is the 1-based line number
	Line int

	// Offset is the byte position of the line start in the stream
	Offset int64

	// Text is the line without its line ending ("\n" or "\r\n")
	Text string

	// Start and End bound the match within Text
	Start, End int

	// Groups holds the text of each capture group; "" for groups that did
	// not participate
	Groups []string
}

// FindLines calls fn with the leftmost match of re on every matching line
// of r, stopping early when fn returns false. Lines end at '\n'; a '\r'
// before it is dropped from Text but counted in offsets.
func FindLines(r io.Reader, re *regexp.Regexp, cfg Config, fn func(Match) bool) error {
	cfg = cfg.withDefaults()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, cfg.BufferSize), cfg.MaxLineLength)
	sc.Split(scanLines)

	var (
		line   int
		offset int64
	)
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		start := offset
		offset += int64(len(raw))
		text := string(trimLineEnding(raw))

		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		m := Match{Line: line, Offset: start, Text: text, Start: loc[0], End: loc[1]}
		for i := 2; i+1 < len(loc); i += 2 {
			g := ""
			if loc[i] >= 0 {
				g = text[loc[i]:loc[i+1]]
			}
			m.Groups = append(m.Groups, g)
		}
		if !fn(m) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", line+1, err)
	}
	return nil
}

// scanLines is bufio.ScanLines keeping the line ending in the token, so the
// caller can count every consumed byte.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// trimLineEnding drops a trailing "\n" or "\r\n". A lone final '\r' is
// content.
func trimLineEnding(line []byte) []byte {
	if !bytes.HasSuffix(line, []byte("\n")) {
		return line
	}
	return bytes.TrimSuffix(line[:len(line)-1], []byte("\r"))
}

// Count returns the number of lines of r that re matches.
func Count(r io.Reader, re *regexp.Regexp, cfg Config) (int, error) {
	n := 0
	err := FindLines(r, re, cfg, func(Match) bool {
		n++
		return true
	})
	return n, err
}
