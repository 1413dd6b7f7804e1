// Package report assembles dynamic WHERE/HAVING fragments from a fixed set of
// predicate kinds. The repository owns the column expressions; request input
// only ever becomes a bound argument, never SQL text.
package report

import "strings"

type Kind int

const (
	Equal Kind = iota
	AtLeast
	Above
	Below
	IsNull
	NotNull
)

type predicate struct {
	expr string
	kind Kind
	arg  interface{}
}

// Clause is an AND-composed list of typed predicates.
type Clause struct {
	preds []predicate
}

func NewClause() *Clause {
	return &Clause{}
}

func (c *Clause) Add(expr string, kind Kind, arg interface{}) *Clause {
	c.preds = append(c.preds, predicate{expr: expr, kind: kind, arg: arg})
	return c
}

func (c *Clause) Empty() bool {
	return len(c.preds) == 0
}

// Render returns the SQL fragment (without the WHERE/HAVING keyword) and its
// bound arguments.
func (c *Clause) Render() (string, []interface{}) {
	if len(c.preds) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(c.preds))
	args := make([]interface{}, 0, len(c.preds))
	for _, p := range c.preds {
		switch p.kind {
		case Equal:
			parts = append(parts, p.expr+" = ?")
			args = append(args, p.arg)
		case AtLeast:
			parts = append(parts, p.expr+" >= ?")
			args = append(args, p.arg)
		case Above:
			parts = append(parts, p.expr+" > ?")
			args = append(args, p.arg)
		case Below:
			parts = append(parts, p.expr+" < ?")
			args = append(args, p.arg)
		case IsNull:
			parts = append(parts, p.expr+" IS NULL")
		case NotNull:
			parts = append(parts, p.expr+" IS NOT NULL")
		}
	}
	return strings.Join(parts, " AND "), args
}
