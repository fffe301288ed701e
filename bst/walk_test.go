package bst_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-containers/bst"
)

func TestWalk_Errors(t *testing.T) {
	_, err := bst.Walk[int](nil, bst.InOrder)
	assert.ErrorIs(t, err, bst.ErrTreeNil)

	tr := build(1)
	_, err = bst.Walk(tr, bst.InOrder, bst.WithMaxDepth[int](-1))
	assert.ErrorIs(t, err, bst.ErrOptionViolation)

	_, err = bst.Walk(tr, bst.Order(99))
	assert.ErrorIs(t, err, bst.ErrUnknownOrder)
	assert.Contains(t, err.Error(), "Order(99)")
}

func TestWalk_OrdersAndDepths(t *testing.T) {
	tr := build(5, 3, 8, 1)
	cases := []struct {
		order  bst.Order
		values []int
		depths []int
	}{
		{bst.PreOrder, []int{5, 3, 1, 8}, []int{0, 1, 2, 1}},
		{bst.InOrder, []int{1, 3, 5, 8}, []int{2, 1, 0, 1}},
		{bst.PostOrder, []int{1, 3, 8, 5}, []int{2, 1, 1, 0}},
		{bst.BreadthFirst, []int{5, 3, 8, 1}, []int{0, 1, 1, 2}},
		{bst.DepthFirst, []int{5, 3, 1, 8}, []int{0, 1, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.order.String(), func(t *testing.T) {
			res, err := bst.Walk(tr, tc.order)
			require.NoError(t, err)
			assert.Equal(t, tc.values, res.Order)
			assert.Equal(t, tc.depths, res.Depth)
		})
	}
}

func TestWalk_MaxDepth(t *testing.T) {
	tr := build(5, 3, 8, 1, 4, 9)
	cases := []struct {
		order bst.Order
		depth int
		want  []int
	}{
		{bst.PreOrder, 1, []int{5, 3, 8}},
		{bst.InOrder, 1, []int{3, 5, 8}},
		{bst.PostOrder, 1, []int{3, 8, 5}},
		{bst.BreadthFirst, 1, []int{5, 3, 8}},
		{bst.DepthFirst, 1, []int{5, 3, 8}},
		{bst.BreadthFirst, 0, []int{5, 3, 8, 1, 4, 9}}, // explicit no limit
		{bst.InOrder, 10, []int{1, 3, 4, 5, 8, 9}},
	}
	for _, tc := range cases {
		res, err := bst.Walk(tr, tc.order, bst.WithMaxDepth[int](tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "%s depth %d", tc.order, tc.depth)
	}
}

func TestWalk_OnVisit(t *testing.T) {
	tr := build(5, 3, 8, 1)
	var seen []int
	res, err := bst.Walk(tr, bst.BreadthFirst, bst.WithOnVisit(func(v int, depth int) error {
		seen = append(seen, v*10+depth)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{50, 31, 81, 12}, seen)
	assert.Equal(t, []int{5, 3, 8, 1}, res.Order)
}

func TestWalk_OnVisitErrorAborts(t *testing.T) {
	tr := build(5, 3, 8, 1)
	errStop := errors.New("stop")
	res, err := bst.Walk(tr, bst.InOrder, bst.WithOnVisit(func(v int, _ int) error {
		if v == 5 {
			return errStop
		}
		return nil
	}))
	assert.ErrorIs(t, err, errStop)
	require.NotNil(t, res)
	assert.Equal(t, []int{1, 3, 5}, res.Order, "partial result up to the failing value")
}

func TestWalk_EmptyTree(t *testing.T) {
	res, err := bst.Walk(bst.New[int](), bst.PostOrder)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Depth)
}

func TestOrder_String(t *testing.T) {
	assert.Equal(t, "pre-order", bst.PreOrder.String())
	assert.Equal(t, "in-order", bst.InOrder.String())
	assert.Equal(t, "post-order", bst.PostOrder.String())
	assert.Equal(t, "breadth-first", bst.BreadthFirst.String())
	assert.Equal(t, "depth-first", bst.DepthFirst.String())
}
