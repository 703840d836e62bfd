// Package filter composes list WHERE clauses: an AND of clauses, each clause
// an OR of comparisons. The same Builder feeds the count and the page query.
package filter

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// Comparison is a single predicate on a column.
type Comparison interface {
	sql() (string, any)
}

// Equals matches Column = Value.
type Equals struct {
	Column string
	Value  any
}

func (e Equals) sql() (string, any) { return e.Column + " = ?", e.Value }

// Contains matches Column case-insensitively anywhere in the text.
type Contains struct {
	Column string
	Value  string
}

func (c Contains) sql() (string, any) {
	return c.Column + ` ILIKE ? ESCAPE '\'`, "%" + EscapeLike(c.Value) + "%"
}

// Clause is an OR of comparisons.
type Clause []Comparison

type Builder struct {
	clauses []Clause
}

func New() *Builder { return &Builder{} }

// Where adds a clause; an empty clause is ignored.
func (b *Builder) Where(cmps ...Comparison) *Builder {
	if len(cmps) > 0 {
		b.clauses = append(b.clauses, Clause(cmps))
	}
	return b
}

// Search adds name-like OR matching of term over cols. Blank terms are skipped.
func (b *Builder) Search(term string, cols ...string) *Builder {
	t := NormalizeTerm(term)
	if t == "" || len(cols) == 0 {
		return b
	}
	cl := make(Clause, 0, len(cols))
	for _, col := range cols {
		cl = append(cl, Contains{Column: col, Value: t})
	}
	return b.Where(cl...)
}

func (b *Builder) ContainsIf(col string, v *string) *Builder {
	if v == nil {
		return b
	}
	t := NormalizeTerm(*v)
	if t == "" {
		return b
	}
	return b.Where(Contains{Column: col, Value: t})
}

func (b *Builder) EqualsIf(col string, v any, ok bool) *Builder {
	if !ok {
		return b
	}
	return b.Where(Equals{Column: col, Value: v})
}

func (b *Builder) Empty() bool { return len(b.clauses) == 0 }

// Build renders the WHERE body (without the keyword) and its args.
func (b *Builder) Build() (string, []any) {
	if b.Empty() {
		return "", nil
	}
	parts := make([]string, 0, len(b.clauses))
	var args []any
	for _, cl := range b.clauses {
		ors := make([]string, 0, len(cl))
		for _, cmp := range cl {
			s, a := cmp.sql()
			ors = append(ors, s)
			args = append(args, a)
		}
		if len(ors) == 1 {
			parts = append(parts, ors[0])
		} else {
			parts = append(parts, "("+strings.Join(ors, " OR ")+")")
		}
	}
	return strings.Join(parts, " AND "), args
}

// Apply adds the WHERE to tx when the builder is not empty.
func (b *Builder) Apply(tx *gorm.DB) *gorm.DB {
	s, args := b.Build()
	if s == "" {
		return tx
	}
	return tx.Where(s, args...)
}

// NormalizeTerm trims and NFKC-normalizes user input.
func NormalizeTerm(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func EscapeLike(s string) string { return likeEscaper.Replace(s) }
