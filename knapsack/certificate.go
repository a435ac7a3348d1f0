// SPDX-License-Identifier: MIT

package knapsack

import (
	"bufio"
	"fmt"
	"io"
)

// WriteCertificate writes sol as its item count followed by one 0-based id
// per line, ascending.
//
// Complexity: O(n).
func WriteCertificate(w io.Writer, sol *Solution) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", sol.NumberOfItems())
	for _, id := range sol.Items() {
		fmt.Fprintf(bw, "%d\n", id)
	}
	return bw.Flush()
}

// ReadCertificate parses a certificate written by WriteCertificate and
// rebuilds the solution on inst.
//
// Errors: ErrMalformedCertificate (bad count, unknown or duplicate id).
// Complexity: O(n).
func ReadCertificate(r io.Reader, inst *Instance) (*Solution, error) {
	tr := newTokenReader(r)
	count, err := tr.int("item count")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCertificate, err)
	}
	if count < 0 || count > int64(inst.NumberOfItems()) {
		return nil, fmt.Errorf("%w: item count %d for %d items", ErrMalformedCertificate, count, inst.NumberOfItems())
	}
	sol := NewSolution(inst)
	var (
		i  int64
		id int64
	)
	for i = 0; i < count; i++ {
		id, err = tr.int("item id")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCertificate, err)
		}
		if err = sol.Add(ItemID(id)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCertificate, err)
		}
	}
	return sol, nil
}
