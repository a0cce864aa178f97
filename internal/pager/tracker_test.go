package pager_test

import (
	"testing"

	"github.com/blackwell-systems/bookconnect/internal/pager"
	"github.com/stretchr/testify/assert"
)

func TestNew_FortyBooksPageOf36(t *testing.T) {
	tr := pager.New(40, 36)
	assert.Equal(t, 36, tr.Shown())
	assert.Equal(t, "(4)", tr.Label())
	assert.True(t, tr.HasMore())

	from, to := tr.Advance()
	assert.Equal(t, 36, from)
	assert.Equal(t, 40, to)
	assert.Equal(t, 40, tr.Shown())
	assert.False(t, tr.HasMore())
	assert.Equal(t, "(0)", tr.Label())
}

func TestNew_ShortList(t *testing.T) {
	tr := pager.New(5, 36)
	assert.Equal(t, 5, tr.Shown())
	assert.False(t, tr.HasMore())
	assert.Equal(t, 0, tr.Remaining())
}

func TestNew_Empty(t *testing.T) {
	tr := pager.New(0, 36)
	assert.Equal(t, 0, tr.Shown())
	assert.False(t, tr.HasMore())
	from, to := tr.Advance()
	assert.Equal(t, from, to)
	assert.Equal(t, "(0)", tr.Label())
}

func TestNew_DefaultPageSize(t *testing.T) {
	tr := pager.New(100, 0)
	assert.Equal(t, pager.DefaultPageSize, tr.PageSize())
	assert.Equal(t, pager.DefaultPageSize, tr.Shown())

	assert.Equal(t, 0, pager.New(-3, 10).Total())
}

func TestAdvance_ExhaustedLeavesCursor(t *testing.T) {
	tr := pager.New(10, 4)
	tr.Advance()
	tr.Advance()
	assert.Equal(t, 10, tr.Shown())

	for i := 0; i < 3; i++ {
		from, to := tr.Advance()
		assert.Equal(t, 10, from)
		assert.Equal(t, 10, to)
		assert.Equal(t, 10, tr.Shown())
	}
}

func TestAdvance_MonotonicAndBounded(t *testing.T) {
	for total := 0; total <= 50; total++ {
		for size := 1; size <= 12; size++ {
			tr := pager.New(total, size)
			prev := tr.Shown()
			for i := 0; i < total/size+3; i++ {
				from, to := tr.Advance()
				assert.Equal(t, prev, from)
				assert.GreaterOrEqual(t, tr.Shown(), prev)
				assert.LessOrEqual(t, tr.Shown(), total)
				assert.Equal(t, tr.Shown(), to)
				prev = tr.Shown()
			}
			assert.Equal(t, total, tr.Shown())
		}
	}
}

func TestInfo(t *testing.T) {
	tr := pager.New(40, 36)
	assert.Equal(t, pager.Info{Page: 1, PageSize: 36, Shown: 36, Total: 40, TotalPages: 2}, tr.Info())
	tr.Advance()
	assert.Equal(t, 2, tr.Info().Page)
	assert.Equal(t, 0, pager.New(0, 36).Info().TotalPages)
}
