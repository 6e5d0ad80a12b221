package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	gr, err := Path(5)
	require.NoError(t, err)
	require.Len(t, gr.Verts, 5)
	require.Equal(t, 5, gr.G.Order())

	for i := 1; i < 5; i++ {
		fwd := false
		for e := range gr.G.OutEdges(gr.Verts[i-1]) {
			if gr.G.Head(e) == gr.Verts[i] {
				fwd = true
			}
		}
		require.True(t, fwd, "missing forward edge %d->%d", i-1, i)
	}

	_, err = Path(1)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestCycle(t *testing.T) {
	gr, err := Cycle(4)
	require.NoError(t, err)
	require.Len(t, gr.Verts, 4)

	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		found := false
		for e := range gr.G.OutEdges(gr.Verts[i]) {
			if gr.G.Head(e) == gr.Verts[j] {
				found = true
			}
		}
		require.True(t, found, "missing ring edge %d->%d", i, j)
	}

	_, err = Cycle(2)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestStar(t *testing.T) {
	gr, err := Star(4)
	require.NoError(t, err)
	hub := gr.Verts[0]

	spokes := 0
	for range gr.G.OutEdges(hub) {
		spokes++
	}
	require.Equal(t, 3, spokes)

	_, err = Star(1)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestWheel(t *testing.T) {
	gr, err := Wheel(5)
	require.NoError(t, err)
	require.Len(t, gr.Verts, 5)

	hub := gr.Verts[4]
	spokes := 0
	for range gr.G.OutEdges(hub) {
		spokes++
	}
	require.Equal(t, 4, spokes)

	_, err = Wheel(3)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestComplete(t *testing.T) {
	gr, err := Complete(4)
	require.NoError(t, err)

	for _, v := range gr.Verts {
		out := 0
		for range gr.G.OutEdges(v) {
			out++
		}
		require.Equal(t, 3, out)
	}
}

func TestGrid(t *testing.T) {
	gr, err := Grid(2, 3)
	require.NoError(t, err)
	require.Len(t, gr.Verts, 6)

	corner := gr.Verts[0]
	out := 0
	for range gr.G.OutEdges(corner) {
		out++
	}
	require.Equal(t, 2, out)

	_, err = Grid(0, 3)
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomSparse_FullProbability(t *testing.T) {
	gr, err := RandomSparse(5, 1.0)
	require.NoError(t, err)
	for _, v := range gr.Verts {
		out := 0
		for range gr.G.OutEdges(v) {
			out++
		}
		require.Equal(t, 4, out)
	}
}

func TestRandomSparse_ZeroProbability(t *testing.T) {
	gr, err := RandomSparse(5, 0.0)
	require.NoError(t, err)
	for _, v := range gr.Verts {
		out := 0
		for range gr.G.OutEdges(v) {
			out++
		}
		require.Equal(t, 0, out)
	}
}

func TestRandomSparse_InvalidProbability(t *testing.T) {
	_, err := RandomSparse(5, 1.5)
	require.ErrorIs(t, err, ErrInvalidProbability)
}

func TestRandomSparse_RequiresRand(t *testing.T) {
	_, err := RandomSparse(5, 0.5)
	require.ErrorIs(t, err, ErrNeedRandSource)

	gr, err := RandomSparse(5, 0.5, WithSeed(7))
	require.NoError(t, err)
	require.NotNil(t, gr)
}

func TestRandomRegular(t *testing.T) {
	gr, err := RandomRegular(6, 3, WithSeed(42))
	require.NoError(t, err)
	for _, v := range gr.Verts {
		out := 0
		for range gr.G.OutEdges(v) {
			out++
		}
		require.Equal(t, 3, out)
	}
}

func TestRandomRegular_OddParityRejected(t *testing.T) {
	_, err := RandomRegular(5, 3, WithSeed(1))
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestRandomRegular_RequiresRand(t *testing.T) {
	_, err := RandomRegular(6, 3)
	require.ErrorIs(t, err, ErrNeedRandSource)
}

func TestBuildIDsAreUnique(t *testing.T) {
	g1, err := Path(3)
	require.NoError(t, err)
	g2, err := Path(3)
	require.NoError(t, err)
	require.NotEqual(t, g1.BuildID, g2.BuildID)
}

func TestWithConstantWeight(t *testing.T) {
	gr, err := Path(3, WithConstantWeight(5))
	require.NoError(t, err)
	for e := range gr.G.OutEdges(gr.Verts[0]) {
		require.Equal(t, 5.0, gr.Weight.Get(e))
	}
}

func TestWithSeedDeterminism(t *testing.T) {
	a, err := RandomSparse(8, 0.5, WithSeed(99))
	require.NoError(t, err)
	b, err := RandomSparse(8, 0.5, WithSeed(99))
	require.NoError(t, err)

	countEdges := func(gr *Graph) int {
		n := 0
		for _, v := range gr.Verts {
			for range gr.G.OutEdges(v) {
				n++
			}
		}
		return n
	}
	require.Equal(t, countEdges(a), countEdges(b))
}

func TestWithRand(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	gr, err := RandomSparse(6, 0.5, WithRand(rng))
	require.NoError(t, err)
	require.NotNil(t, gr)
}
