// file: internals/helpers/pagination.go
package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Paging struct {
	Page   int
	Limit  int
	Offset int
}

// NewPaging clamps page and limit to at least 1 and limit to maxLimit
// (0 = no cap). page is capped so the offset never overflows; such a page
// is past any real table and comes back empty.
func NewPaging(page, limit, maxLimit int) Paging {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if maxLimit > 0 && limit > maxLimit {
		limit = maxLimit
	}
	if maxPage := math.MaxInt / limit; page > maxPage {
		page = maxPage
	}
	return Paging{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ResolvePaging reads ?page= and ?limit= (alias ?per_page=). Missing or
// non-numeric values fall back to the defaults.
func ResolvePaging(c *fiber.Ctx, defaultLimit, maxLimit int) Paging {
	page := atoiDefault(c.Query("page"), DefaultPage)

	limitRaw := strings.TrimSpace(c.Query("limit"))
	if limitRaw == "" {
		limitRaw = strings.TrimSpace(c.Query("per_page"))
	}
	limit := atoiDefault(limitRaw, defaultLimit)

	return NewPaging(page, limit, maxLimit)
}

/* ===============================
   Sorting
=================================*/

// ResolveOrder builds an ORDER BY expression from ?sort= and ?order= against
// a whitelist of sort keys. tieBreaker is appended so pages stay stable.
func ResolveOrder(c *fiber.Ctx, allowed map[string]string, defaultKey, tieBreaker string) string {
	return OrderClause(c.Query("sort"), c.Query("order"), allowed, defaultKey, tieBreaker)
}

func OrderClause(sortKey, order string, allowed map[string]string, defaultKey, tieBreaker string) string {
	key := strings.TrimSpace(sortKey)
	col, ok := allowed[key]
	if !ok {
		col = allowed[defaultKey]
	}

	dir := "DESC"
	if strings.EqualFold(strings.TrimSpace(order), "asc") {
		dir = "ASC"
	}

	expr := col + " " + dir
	if tieBreaker != "" && tieBreaker != col {
		expr += ", " + tieBreaker + " " + dir
	}
	return expr
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}
