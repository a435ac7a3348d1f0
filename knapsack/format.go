// SPDX-License-Identifier: MIT

// format.go - plain-text instance readers and the standard writer.
//
// Supported layouts (whitespace separated unless noted):
//
//	standard            n C, then n lines "p w"
//	pisinger            5 header lines (name, "n N", "c C", "z Z", "time T"),
//	                    then n CSV lines "id,p,w,x"
//	jooken              n, then n lines "id p w", then C
//	subsetsum_standard  n C, then n weights (profit = weight)

package knapsack

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format names an instance file layout.
type Format string

const (
	// FormatStandard is "n C" followed by n "profit weight" pairs.
	FormatStandard Format = "standard"
	// FormatPisinger is the layout of Pisinger's generated benchmark files.
	FormatPisinger Format = "pisinger"
	// FormatJooken is the layout of the Jooken et al. hard instances.
	FormatJooken Format = "jooken"
	// FormatSubsetSumStandard is "n C" followed by n weights; profit equals weight.
	FormatSubsetSumStandard Format = "subsetsum_standard"
)

// Formats lists every readable format in a stable order.
func Formats() []Format {
	return []Format{FormatStandard, FormatPisinger, FormatJooken, FormatSubsetSumStandard}
}

// ParseFormat maps a name to a Format.
//
// Errors: ErrUnknownFormat.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ReadInstance parses r in the given format and builds the instance.
//
// Errors: ErrUnknownFormat, ErrMalformedInstance, plus any Build error.
// Complexity: O(size of input).
func ReadInstance(r io.Reader, format Format) (*Instance, error) {
	var (
		b   *InstanceBuilder
		err error
	)
	switch format {
	case FormatStandard:
		b, err = readStandard(newTokenReader(r), false)
	case FormatSubsetSumStandard:
		b, err = readStandard(newTokenReader(r), true)
	case FormatJooken:
		b, err = readJooken(newTokenReader(r))
	case FormatPisinger:
		b, err = readPisinger(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// WriteInstance writes inst in the standard format.
//
// Complexity: O(n).
func WriteInstance(w io.Writer, inst *Instance) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", inst.NumberOfItems(), inst.Capacity())
	for _, it := range inst.items {
		fmt.Fprintf(bw, "%d %d\n", it.Profit, it.Weight)
	}
	return bw.Flush()
}

func readStandard(tr *tokenReader, subsetSum bool) (*InstanceBuilder, error) {
	n, err := tr.itemCount()
	if err != nil {
		return nil, err
	}
	c, err := tr.int("capacity")
	if err != nil {
		return nil, err
	}
	b := NewInstanceBuilder()
	b.SetCapacity(c)
	var i int64
	for i = 0; i < n; i++ {
		if subsetSum {
			w, err := tr.int("weight")
			if err != nil {
				return nil, err
			}
			b.AddItem(w, w)
			continue
		}
		p, err := tr.int("profit")
		if err != nil {
			return nil, err
		}
		w, err := tr.int("weight")
		if err != nil {
			return nil, err
		}
		b.AddItem(p, w)
	}
	return b, nil
}

func readJooken(tr *tokenReader) (*InstanceBuilder, error) {
	n, err := tr.itemCount()
	if err != nil {
		return nil, err
	}
	b := NewInstanceBuilder()
	var i int64
	for i = 0; i < n; i++ {
		if _, err = tr.int("item id"); err != nil {
			return nil, err
		}
		p, err := tr.int("profit")
		if err != nil {
			return nil, err
		}
		w, err := tr.int("weight")
		if err != nil {
			return nil, err
		}
		b.AddItem(p, w)
	}
	c, err := tr.int("capacity")
	if err != nil {
		return nil, err
	}
	b.SetCapacity(c)
	return b, nil
}

func readPisinger(r io.Reader) (*InstanceBuilder, error) {
	br := bufio.NewReader(r)
	header := make(map[string]int64, 3)
	var (
		line string
		err  error
		i    int
	)
	for i = 0; i < 5; i++ {
		line, err = br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, fmt.Errorf("%w: pisinger header line %d", ErrMalformedInstance, i+1)
		}
		fields := strings.Fields(line)
		if i == 0 || len(fields) != 2 {
			continue
		}
		switch fields[0] {
		case "n", "c", "z":
			v, perr := strconv.ParseInt(fields[1], 10, 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: pisinger header %q: %v", ErrMalformedInstance, fields[0], perr)
			}
			header[fields[0]] = v
		}
	}
	n, okN := header["n"]
	c, okC := header["c"]
	if !okN || !okC {
		return nil, fmt.Errorf("%w: pisinger header misses n or c", ErrMalformedInstance)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: pisinger negative number of items %d", ErrMalformedInstance, n)
	}

	b := NewInstanceBuilder()
	b.SetCapacity(c)
	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	var rec []string
	for int64(b.NumberOfItems()) < n {
		rec, err = cr.Read()
		if err != nil {
			return nil, fmt.Errorf("%w: pisinger item %d: %v", ErrMalformedInstance, b.NumberOfItems(), err)
		}
		if len(rec) < 3 {
			return nil, fmt.Errorf("%w: pisinger item %d has %d fields", ErrMalformedInstance, b.NumberOfItems(), len(rec))
		}
		p, perr := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: pisinger profit: %v", ErrMalformedInstance, perr)
		}
		w, werr := strconv.ParseInt(strings.TrimSpace(rec[2]), 10, 64)
		if werr != nil {
			return nil, fmt.Errorf("%w: pisinger weight: %v", ErrMalformedInstance, werr)
		}
		b.AddItem(p, w)
	}
	return b, nil
}

// tokenReader yields whitespace-separated integers.
type tokenReader struct {
	sc    *bufio.Scanner
	count int
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (tr *tokenReader) int(what string) (int64, error) {
	if !tr.sc.Scan() {
		if err := tr.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: reading %s: %v", ErrMalformedInstance, what, err)
		}
		return 0, fmt.Errorf("%w: unexpected end of input, want %s (token %d)", ErrMalformedInstance, what, tr.count+1)
	}
	tr.count++
	v, err := strconv.ParseInt(tr.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s at token %d: %v", ErrMalformedInstance, what, tr.count, err)
	}
	return v, nil
}

// itemCount reads the leading item count, which must not be negative.
func (tr *tokenReader) itemCount() (int64, error) {
	n, err := tr.int("number of items")
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative number of items %d", ErrMalformedInstance, n)
	}
	return n, nil
}
