// This file declares the Instance and Arc value types, the NoNet
// sentinel, and the package's sentinel errors.
package instance

import "errors"

// NoNet marks a node that belongs to no net (a Normal node) in NetOf.
const NoNet = -1

// Sentinel errors for instance loading.
var (
	// ErrNetMismatch indicates a root whose net assignment in roots.dat
	// disagrees with its assignment in terms.dat (data corruption).
	ErrNetMismatch = errors.New("instance: root net mismatch between roots.dat and terms.dat")

	// ErrDuplicateRoot indicates two roots assigned to the same net.
	ErrDuplicateRoot = errors.New("instance: duplicate root for net")

	// ErrMissingRoot indicates a net with no root in roots.dat.
	ErrMissingRoot = errors.New("instance: net has no root")

	// ErrNodeOutOfRange indicates a node id outside the declared node count.
	ErrNodeOutOfRange = errors.New("instance: node id out of range")

	// ErrBadParam indicates that param.dat lacks the nodes or nets key.
	ErrBadParam = errors.New("instance: param.dat missing nodes or nets")
)

// Arc is a directed, integer-cost connection between two nodes.
// Arcs are asymmetric: (tail, head) does not imply (head, tail).
type Arc struct {
	// Tail is the source node of the arc (0-based).
	Tail int

	// Head is the destination node of the arc (0-based).
	Head int

	// Cost is the non-negative cost of using the arc.
	Cost int
}

// Instance is a fully loaded, 0-based Steiner Tree Packing instance.
// Roots, Terminals and Normals partition [0, NumNodes).
type Instance struct {
	// NumNodes is |V|.
	NumNodes int

	// NumNets is |L|.
	NumNets int

	// Roots holds one root node per net; Roots[k] is the root of net k.
	Roots []int

	// Terminals holds the terminal nodes (specials minus roots), sorted.
	Terminals []int

	// Normals holds the non-special nodes (V minus specials), sorted.
	Normals []int

	// Arcs lists every directed arc in file order.
	Arcs []Arc

	// NetOf maps each node to its net, or NoNet for Normal nodes.
	NetOf []int

	// Cardinality[k] is the number of terminals owned by net k
	// (the root is not counted).
	Cardinality []int

	// Cost is the dense NumNodes×NumNodes cost table. Absent arcs read 0;
	// distinguishing "no arc" from "zero-cost arc" requires Arcs.
	Cost *CostMatrix

	// arcIndex resolves a (tail, head) pair to its position in Arcs.
	arcIndex map[[2]int]int
}

// ArcIndex returns the position of arc (tail, head) in Arcs, and whether
// such an arc exists.
func (in *Instance) ArcIndex(tail, head int) (int, bool) {
	idx, ok := in.arcIndex[[2]int{tail, head}]

	return idx, ok
}

// TerminalIndex returns the position of node in Terminals, and whether
// node is a terminal. Terminals is sorted, so a binary search would do;
// the linear scan is kept because terminal counts are small.
func (in *Instance) TerminalIndex(node int) (int, bool) {
	for i, t := range in.Terminals {
		if t == node {
			return i, true
		}
	}

	return 0, false
}

// IsRoot reports whether node is the root of some net.
func (in *Instance) IsRoot(node int) bool {
	for _, r := range in.Roots {
		if r == node {
			return true
		}
	}

	return false
}
