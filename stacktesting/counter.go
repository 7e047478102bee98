package stacktesting

// CounterRef is a frame value holding a shared mutable counter. Many frames
// may hold the same counter, each derived from the one below it.
type CounterRef struct {
	N *uint32
}

// Rederive returns a single new frame holding the same counter as top.
func Rederive(top *CounterRef) []*CounterRef {
	return []*CounterRef{{N: top.N}}
}

// Node is a frame value that links to the at-rest value of the frame it was
// derived from. The link is a plain pointer into the backing storage and is
// only sound because that storage never moves.
type Node struct {
	Parent *Node
	Depth  int
	Label  string
}

// Chain walks the parent links from n to the root, returning the depths
// visited.
func Chain(n *Node) []int {
	var depths []int
	for ; n != nil; n = n.Parent {
		depths = append(depths, n.Depth)
	}
	return depths
}
