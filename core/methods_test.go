package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/RobertDurfee/DirectedGraph/core"
)

// MultidigraphSuite exercises vertex and edge lifecycle on a fresh
// string/rune graph per test.
type MultidigraphSuite struct {
	suite.Suite
	g *core.Multidigraph[string, rune]
}

func (s *MultidigraphSuite) SetupTest() {
	s.g = core.NewMultidigraph[string, rune]()
}

func (s *MultidigraphSuite) TestNewGraphIsEmpty() {
	require := require.New(s.T())
	require.Equal(0, s.g.VertexCount(), "fresh graph should have no vertices")
	require.Equal(0, s.g.EdgeCount(), "fresh graph should have no edges")
	require.Empty(collect(s.g.Vertices()), "Vertices() of empty graph should yield nothing")
	require.Empty(collect(s.g.Edges()), "Edges() of empty graph should yield nothing")
}

func (s *MultidigraphSuite) TestAddVertexAssignsDenseIndexes() {
	require := require.New(s.T())
	// Insertion order is index order, starting at zero
	require.Equal(0, s.g.AddVertex("X1"))
	require.Equal(1, s.g.AddVertex("X2"))
	require.Equal(2, s.g.AddVertex("X3"))
	require.Equal(3, s.g.VertexCount())

	// Valid indexes are exactly {0, 1, 2}
	require.ElementsMatch([]core.VertexIndex{0, 1, 2}, collect(s.g.Vertices()))
}

func (s *MultidigraphSuite) TestAddVertexIdempotent() {
	require := require.New(s.T())
	first := s.g.AddVertex("X1")
	s.g.AddVertex("X2")

	// Equal label => same vertex, same index, no growth
	again := s.g.AddVertex("X1")
	require.Equal(first, again, "re-adding an equal label should return the original index")
	require.Equal(2, s.g.VertexCount(), "re-adding an equal label should not grow the graph")
}

func (s *MultidigraphSuite) TestContainsVertexRoundTrip() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")

	vi, ok := s.g.ContainsVertex("X1")
	require.True(ok, "X1 should be present")
	require.Equal(x1, vi, "ContainsVertex should return the index AddVertex issued")
	require.Equal("X1", s.g.Vertex(vi).Label, "Vertex should hold the inserted label")

	// Absence is data, not an error
	_, ok = s.g.ContainsVertex("X9")
	require.False(ok, "X9 was never added")
}

func (s *MultidigraphSuite) TestAddEdgeAssignsDenseIndexes() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")
	x2 := s.g.AddVertex("X2")

	require.Equal(0, s.g.AddEdge(x1, 'a', x2))
	require.Equal(1, s.g.AddEdge(x1, 'b', x2))
	require.Equal(2, s.g.EdgeCount())
	require.ElementsMatch([]core.EdgeIndex{0, 1}, collect(s.g.Edges()))
}

func (s *MultidigraphSuite) TestAddEdgeIdempotent() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")
	x2 := s.g.AddVertex("X2")
	first := s.g.AddEdge(x1, 'a', x2)

	// Equal triple => same edge
	again := s.g.AddEdge(x1, 'a', x2)
	require.Equal(first, again, "re-adding an equal triple should return the original index")
	require.Equal(1, s.g.EdgeCount(), "re-adding an equal triple should not grow the graph")
}

func (s *MultidigraphSuite) TestParallelEdgesDifferByLabel() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")
	x2 := s.g.AddVertex("X2")

	a := s.g.AddEdge(x1, 'a', x2)
	b := s.g.AddEdge(x1, 'b', x2)
	require.NotEqual(a, b, "edges with distinct labels between the same pair are distinct")
	require.Equal(2, s.g.EdgeCount())
}

func (s *MultidigraphSuite) TestSelfLoop() {
	require := require.New(s.T())
	z := s.g.AddVertex("Z")
	loop := s.g.AddEdge(z, 'l', z)

	e := s.g.Edge(loop)
	require.Equal(z, e.Source)
	require.Equal(z, e.Target)
	require.ElementsMatch([]core.VertexIndex{z}, collect(s.g.Neighbors(z)))
}

func (s *MultidigraphSuite) TestContainsEdgeRoundTrip() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")
	x2 := s.g.AddVertex("X2")
	added := s.g.AddEdge(x1, 'a', x2)

	ei, ok := s.g.ContainsEdge(x1, 'a', x2)
	require.True(ok, "edge (X1,a,X2) should be present")
	require.Equal(added, ei)
	require.Equal(core.Edge[rune]{Source: x1, Label: 'a', Target: x2}, s.g.Edge(ei))

	// Same pair, different label: absent
	_, ok = s.g.ContainsEdge(x1, 'z', x2)
	require.False(ok)
	// Reversed direction: absent
	_, ok = s.g.ContainsEdge(x2, 'a', x1)
	require.False(ok)
}

func (s *MultidigraphSuite) TestVertexPanicsOnUnissuedIndex() {
	require := require.New(s.T())
	s.g.AddVertex("X1")
	require.PanicsWithValue(core.ErrVertexIndexOutOfRange, func() { s.g.Vertex(1) })
	require.PanicsWithValue(core.ErrVertexIndexOutOfRange, func() { s.g.Vertex(-1) })
}

func (s *MultidigraphSuite) TestEdgePanicsOnUnissuedIndex() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")
	s.g.AddEdge(x1, 'a', x1)
	require.PanicsWithValue(core.ErrEdgeIndexOutOfRange, func() { s.g.Edge(1) })
	require.PanicsWithValue(core.ErrEdgeIndexOutOfRange, func() { s.g.Edge(-1) })
}

func (s *MultidigraphSuite) TestAddEdgePanicsOnUnissuedEndpoints() {
	require := require.New(s.T())
	x1 := s.g.AddVertex("X1")
	require.PanicsWithValue(core.ErrVertexIndexOutOfRange, func() { s.g.AddEdge(7, 'a', x1) })
	require.PanicsWithValue(core.ErrVertexIndexOutOfRange, func() { s.g.AddEdge(x1, 'a', 7) })

	// Rejected calls must leave no trace
	require.Equal(0, s.g.EdgeCount(), "a panicking AddEdge should not store anything")
	require.Empty(collect(s.g.EdgesFrom(x1)))
}

func TestMultidigraphSuite(t *testing.T) {
	suite.Run(t, new(MultidigraphSuite))
}
