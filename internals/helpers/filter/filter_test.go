package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_Empty(t *testing.T) {
	s, args := New().Search("   ", "name").ContainsIf("x", nil).EqualsIf("id", 1, false).Build()
	assert.Equal(t, "", s)
	assert.Nil(t, args)
}

func TestBuild_SearchIsOrOfContains(t *testing.T) {
	s, args := New().Search("math", "s.name", "s.code").Build()
	assert.Equal(t, `(s.name ILIKE ? ESCAPE '\' OR s.code ILIKE ? ESCAPE '\')`, s)
	assert.Equal(t, []any{"%math%", "%math%"}, args)
}

func TestBuild_ClausesAreAnded(t *testing.T) {
	dept := "Computer"
	s, args := New().
		Search("intro", "s.name", "s.code").
		ContainsIf("d.name", &dept).
		EqualsIf("s.department_id", int64(3), true).
		Build()

	assert.Equal(t,
		`(s.name ILIKE ? ESCAPE '\' OR s.code ILIKE ? ESCAPE '\') AND d.name ILIKE ? ESCAPE '\' AND s.department_id = ?`,
		s)
	assert.Equal(t, []any{"%intro%", "%intro%", "%Computer%", int64(3)}, args)
}

func TestContains_EscapesWildcards(t *testing.T) {
	_, args := New().Search(`50%_off\`, "name").Build()
	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func TestNormalizeTerm(t *testing.T) {
	// full-width letters fold to ASCII under NFKC
	assert.Equal(t, "ABC", NormalizeTerm("  ＡＢＣ "))
	assert.Equal(t, "", NormalizeTerm("\t"))
}

func TestWhere_IgnoresEmptyClause(t *testing.T) {
	b := New().Where()
	assert.True(t, b.Empty())
}
