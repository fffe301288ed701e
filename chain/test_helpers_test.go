package chain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-containers/chain"
)

// requireLinked checks every structural invariant of c and that its nodes,
// head to tail, are exactly want.
func requireLinked[T any](t *testing.T, c *chain.Chain[T], want []*chain.Node[T]) {
	t.Helper()

	// forward walk: link symmetry and node identity
	var forward []*chain.Node[T]
	for n := c.Head(); n != nil; n = n.Next() {
		if nx := n.Next(); nx != nil {
			require.Same(t, n, nx.Prev(), "next.prev must point back")
		}
		forward = append(forward, n)
	}

	// backward walk
	backward := 0
	for n := c.Tail(); n != nil; n = n.Prev() {
		backward++
	}

	require.Equal(t, len(want), c.Len(), "Len")
	require.Equal(t, c.Len(), len(forward), "forward count")
	require.Equal(t, c.Len(), backward, "backward count")
	if c.Len() == 0 {
		require.Nil(t, c.Head())
		require.Nil(t, c.Tail())
		return
	}
	require.Nil(t, c.Head().Prev(), "head.prev")
	require.Nil(t, c.Tail().Next(), "tail.next")
	for i := range want {
		require.Same(t, want[i], forward[i], "node %d", i)
	}
}
