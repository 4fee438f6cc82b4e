// Package spec builds SQL filter conditions for book searches out of a
// fixed set of named providers combined conjunctively.
package spec

import (
	"fmt"
	"strings"
)

// Clause is a single SQL condition with `?` placeholders for its args.
type Clause struct {
	Expr string
	Args []any
}

// Filter is a conjunction of clauses. The zero value matches everything.
type Filter struct {
	clauses []Clause
}

func (f Filter) And(c Clause) Filter {
	clauses := make([]Clause, 0, len(f.clauses)+1)
	clauses = append(clauses, f.clauses...)
	clauses = append(clauses, c)
	return Filter{clauses: clauses}
}

func (f Filter) Empty() bool {
	return len(f.clauses) == 0
}

func (f Filter) Clauses() []Clause {
	return f.clauses
}

// Where renders the filter as an AND-joined SQL fragment, rewriting `?`
// placeholders to positional `$n` parameters starting at startArg. An empty
// filter renders to an empty string with no args.
func (f Filter) Where(startArg int) (string, []any) {
	if len(f.clauses) == 0 {
		return "", nil
	}
	var sb strings.Builder
	var args []any
	n := startArg
	for i, c := range f.clauses {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		for _, ch := range c.Expr {
			if ch == '?' {
				fmt.Fprintf(&sb, "$%d", n)
				n++
				continue
			}
			sb.WriteRune(ch)
		}
		args = append(args, c.Args...)
	}
	return sb.String(), args
}
