package usermgr

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hnrobert/lumgecos/internal/hostfs"
)

type rawLine[T any] struct {
	raw   string
	entry *T
}

type parsedFile[T any] struct {
	lines []rawLine[T]
}

func (pf *parsedFile[T]) entries() []*T {
	out := make([]*T, 0, len(pf.lines))
	for i := range pf.lines {
		if pf.lines[i].entry != nil {
			out = append(out, pf.lines[i].entry)
		}
	}
	return out
}

// bytes renders every line, using format for parsed entries.
func (pf *parsedFile[T]) bytes(format func(*T) string) []byte {
	var buf strings.Builder
	for _, ln := range pf.lines {
		if ln.entry != nil {
			buf.WriteString(format(ln.entry))
		} else {
			buf.WriteString(ln.raw)
		}
		buf.WriteByte('\n')
	}
	return []byte(buf.String())
}

func loadFile[T any](path string, minFields int, build func(lineNo int, parts []string) (*T, error)) (parsedFile[T], error) {
	b, err := hostfs.ReadFile(path)
	if err != nil {
		return parsedFile[T]{}, err
	}
	return parseFile(path, b, minFields, build)
}

// parseFile hands each record line with at least minFields colon separated
// parts to build. Comments, blank and short lines stay raw, as do lines for
// which build returns a nil entry. path is only used in errors.
func parseFile[T any](path string, b []byte, minFields int, build func(lineNo int, parts []string) (*T, error)) (parsedFile[T], error) {
	var pf parsedFile[T]
	lines, err := readLines(bytes.NewReader(b))
	if err != nil {
		return pf, err
	}
	for i, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			pf.lines = append(pf.lines, rawLine[T]{raw: line})
			continue
		}
		parts := parseColonLine(line)
		if len(parts) < minFields {
			pf.lines = append(pf.lines, rawLine[T]{raw: line})
			continue
		}
		e, err := build(i+1, parts)
		if err != nil {
			return pf, fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		if e == nil {
			pf.lines = append(pf.lines, rawLine[T]{raw: line})
			continue
		}
		pf.lines = append(pf.lines, rawLine[T]{entry: e})
	}
	return pf, nil
}

func parseColonLine(line string) []string {
	// Keep trailing empty fields.
	return strings.Split(line, ":")
}

func readLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	s.Buffer(buf, 1024*1024)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func atoi(field, ctx string) (int, error) {
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("invalid int %q in %s: %w", field, ctx, err)
	}
	return n, nil
}
