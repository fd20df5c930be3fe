package trivia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindowsReconstructInput(t *testing.T) {
	items := make([]int, 0, 26)
	for i := 0; i < 26; i++ {
		items = append(items, i)
	}

	var rebuilt []int
	for page := 1; ; page++ {
		window := Paginate(items, page, 10)
		if len(window) == 0 {
			break
		}
		assert.LessOrEqual(t, len(window), 10)
		rebuilt = append(rebuilt, window...)
	}

	assert.Equal(t, items, rebuilt)
}

func TestPaginateBeyondRangeIsEmpty(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, Paginate(items, 2, 10))
	assert.Empty(t, Paginate(items, 999, 10))
	assert.Empty(t, Paginate([]int{}, 1, 10))
}

func TestPaginateInvalidPageFallsBackToFirst(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, items, Paginate(items, 0, 10))
	assert.Equal(t, items, Paginate(items, -5, 10))
}

func TestPaginatePartialLastPage(t *testing.T) {
	items := make([]int, 13)

	assert.Len(t, Paginate(items, 1, 10), 10)
	assert.Len(t, Paginate(items, 2, 10), 3)
}

func TestPaginatePreservesOrder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"c", "d"}, Paginate(items, 2, 2))
}
