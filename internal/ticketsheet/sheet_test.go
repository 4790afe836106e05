package ticketsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotFor(t *testing.T) {
	tests := []struct {
		index int
		want  Slot
	}{
		{index: 0, want: Slot{Page: 0, X: 40, Y: 40}},
		{index: 1, want: Slot{Page: 0, X: 1280, Y: 40}},
		{index: 2, want: Slot{Page: 0, X: 40, Y: 760}},
		{index: 9, want: Slot{Page: 0, X: 1280, Y: 2920}},
		{index: 10, want: Slot{Page: 1, X: 40, Y: 40}},
		{index: 23, want: Slot{Page: 2, X: 1280, Y: 760}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SlotFor(tt.index), "index %d", tt.index)
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(10))
	assert.Equal(t, 2, PageCount(11))
	assert.Equal(t, 100, PageCount(1000))
}

func TestComposePDF_PageCount(t *testing.T) {
	ticket := tinyTicket(t)

	for _, n := range []int{1, 9, 10, 11, 25, 1000} {
		tickets := make([][]byte, n)
		for i := range tickets {
			tickets[i] = ticket
		}

		data, pages, err := ComposePDF(tickets)
		require.NoError(t, err)

		assert.Equal(t, PageCount(n), pages, "n=%d", n)
		assert.Equal(t, PageCount(n), openPDF(t, data).NumPage(), "n=%d", n)
	}
}

func TestComposePDF_SkipsBrokenAndEmptySlots(t *testing.T) {
	ticket := tinyTicket(t)
	tickets := [][]byte{ticket, []byte("not a png"), nil, ticket, ticket, ticket, ticket, ticket, ticket, ticket, ticket}

	data, pages, err := ComposePDF(tickets)
	require.NoError(t, err)

	assert.Equal(t, 2, pages)
	assert.Equal(t, 2, openPDF(t, data).NumPage())
}
