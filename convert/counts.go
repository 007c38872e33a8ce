package convert

import (
	"fmt"
)

// Counts summarizes a run. Lines counts accepted data lines; the rest count generated
// records and are only non-zero when records are generated.
type Counts struct {
	Lines int
	A     int
	AAAA  int
	PTR4  int
	PTR6  int
}

func (t *Counts) add(from *Counts) {
	t.Lines += from.Lines
	t.A += from.A
	t.AAAA += from.AAAA
	t.PTR4 += from.PTR4
	t.PTR6 += from.PTR6
}

// PTR is the total number of PTR records.
func (t *Counts) PTR() int {
	return t.PTR4 + t.PTR6
}

// Records is the total number of records of all types.
func (t *Counts) Records() int {
	return t.A + t.AAAA + t.PTR()
}

func (t *Counts) String() string {
	return fmt.Sprintf("lines=%d A=%d AAAA=%d PTR=%d(%d/%d)",
		t.Lines, t.A, t.AAAA, t.PTR(), t.PTR4, t.PTR6)
}
