package convert

import (
	"fmt"
	"strings"
)

// Category identifies one of the three fragments produced by a run.
type Category int

const (
	Forward Category = iota // A and AAAA records
	PTR4                    // in-addr.arpa PTRs
	PTR6                    // ip6.arpa PTRs
	categoryCount
)

func (t Category) String() string {
	switch t {
	case Forward:
		return "forward"
	case PTR4:
		return "ptr4"
	case PTR6:
		return "ptr6"
	}

	return fmt.Sprintf("category-%d", int(t))
}

// Categories returns all categories in output order.
func Categories() []Category {
	return []Category{Forward, PTR4, PTR6}
}

// Output accumulates the text of each fragment. The zero value is ready to use. Output
// must not be copied once written to.
type Output struct {
	text [categoryCount]strings.Builder
}

func (t *Output) append(c Category, record string) {
	b := &t.text[c]
	b.WriteString(record)
	b.WriteByte('\n')
}

// Text returns the accumulated records for the category. Each record ends with a newline.
func (t *Output) Text(c Category) string {
	return t.text[c].String()
}

// Lines returns the number of records accumulated for the category.
func (t *Output) Lines(c Category) int {
	return strings.Count(t.text[c].String(), "\n")
}

// Dump returns all fragments with a heading for each. It is intended for diagnostic
// output rather than zone loading.
func (t *Output) Dump() string {
	return fmt.Sprintf("## A and AAAA config\n%s\n## IPv4 PTRs\n%s\n## IPv6 PTRs\n%s\n",
		t.Text(Forward), t.Text(PTR4), t.Text(PTR6))
}
