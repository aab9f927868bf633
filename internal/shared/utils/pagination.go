package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const PageSize = 20

// MaxPage keeps (page-1)*PageSize inside int. Any page at or above it is
// past every row, so listing it yields an empty result.
const MaxPage = math.MaxInt/PageSize + 1

// ParsePage converts the ?page= query value into a 1-based page number.
// Empty, non-numeric or non-positive values fall back to the first page.
// Values too large for int are clamped to MaxPage.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(strings.TrimSpace(raw), "-") {
		return MaxPage
	}
	if err != nil || page < 1 {
		return 1
	}
	if page > MaxPage {
		return MaxPage
	}
	return page
}

// PageOffset returns the row offset for a 1-based page.
func PageOffset(page int) int {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	return (page - 1) * PageSize
}
