package instance

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// File names expected inside an instance directory.
const (
	paramFile = "param.dat"
	termsFile = "terms.dat"
	rootsFile = "roots.dat"
	arcsFile  = "arcs.dat"
)

// Load reads the four instance files under dir and returns the fully
// normalized Instance. All ids are converted from the 1-based file
// convention to 0-based here; nothing downstream re-derives indices.
// Complexity: O(V² + A) time (dominated by the dense cost matrix),
// O(V² + A) memory.
func Load(dir string) (*Instance, error) {
	// 1. Parse param.dat into node and net counts.
	params := make(map[string]int, 2)
	err := scanRows(filepath.Join(dir, paramFile), 2, func(fields []string) error {
		v, convErr := strconv.Atoi(fields[1])
		if convErr != nil {
			return fmt.Errorf("instance: %s: %w", paramFile, convErr)
		}
		params[fields[0]] = v

		return nil
	})
	if err != nil {
		return nil, err
	}
	numNodes, okNodes := params["nodes"]
	numNets, okNets := params["nets"]
	if !okNodes || !okNets {
		return nil, ErrBadParam
	}

	// 2. Parse terms.dat: every special (root or terminal) node and its net.
	specials := make([]int, 0)
	specialNet := make(map[int]int)
	err = scanRows(filepath.Join(dir, termsFile), 2, func(fields []string) error {
		node, net, rowErr := nodeNetRow(fields, numNodes, numNets, termsFile)
		if rowErr != nil {
			return rowErr
		}
		if _, seen := specialNet[node]; !seen {
			specials = append(specials, node)
		}
		specialNet[node] = net

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 3. Parse roots.dat: exactly one root per net, each already present in
	//    terms.dat with the same net (anything else is data corruption).
	roots := make([]int, numNets)
	for k := range roots {
		roots[k] = NoNet
	}
	rootSet := make(map[int]bool, numNets)
	err = scanRows(filepath.Join(dir, rootsFile), 2, func(fields []string) error {
		node, net, rowErr := nodeNetRow(fields, numNodes, numNets, rootsFile)
		if rowErr != nil {
			return rowErr
		}
		assigned, seen := specialNet[node]
		if !seen || assigned != net {
			return fmt.Errorf("%w: node %d net %d", ErrNetMismatch, node+1, net+1)
		}
		if roots[net] != NoNet {
			return fmt.Errorf("%w: net %d", ErrDuplicateRoot, net+1)
		}
		roots[net] = node
		rootSet[node] = true

		return nil
	})
	if err != nil {
		return nil, err
	}
	for k, r := range roots {
		if r == NoNet {
			return nil, fmt.Errorf("%w: net %d", ErrMissingRoot, k+1)
		}
	}

	// 4. Parse arcs.dat and fill the dense cost table.
	arcs := make([]Arc, 0)
	cost := NewCostMatrix(numNodes)
	arcIdx := make(map[[2]int]int)
	err = scanRows(filepath.Join(dir, arcsFile), 3, func(fields []string) error {
		tail, head, rowErr := nodePairRow(fields, numNodes, arcsFile)
		if rowErr != nil {
			return rowErr
		}
		c, convErr := strconv.Atoi(fields[2])
		if convErr != nil {
			return fmt.Errorf("instance: %s: %w", arcsFile, convErr)
		}
		arcIdx[[2]int{tail, head}] = len(arcs)
		arcs = append(arcs, Arc{Tail: tail, Head: head, Cost: c})

		return cost.Set(tail, head, c)
	})
	if err != nil {
		return nil, err
	}

	// 5. Derive Terminals = Specials − Roots and Normals = V − Specials.
	terminals := make([]int, 0, len(specials))
	for _, s := range specials {
		if !rootSet[s] {
			terminals = append(terminals, s)
		}
	}
	sort.Ints(terminals)

	normals := make([]int, 0, numNodes-len(specials))
	for v := 0; v < numNodes; v++ {
		if _, special := specialNet[v]; !special {
			normals = append(normals, v)
		}
	}

	// 6. Net membership per node and terminal cardinality per net.
	netOf := make([]int, numNodes)
	for v := range netOf {
		netOf[v] = NoNet
	}
	for node, net := range specialNet {
		netOf[node] = net
	}
	cardinality := make([]int, numNets)
	for _, t := range terminals {
		cardinality[specialNet[t]]++
	}

	return &Instance{
		NumNodes:    numNodes,
		NumNets:     numNets,
		Roots:       roots,
		Terminals:   terminals,
		Normals:     normals,
		Arcs:        arcs,
		NetOf:       netOf,
		Cardinality: cardinality,
		Cost:        cost,
		arcIndex:    arcIdx,
	}, nil
}

// scanRows streams a whitespace-delimited file, skipping "#" comment
// lines, blank lines, and rows with fewer than minFields fields, and
// invokes fn on every remaining row.
func scanRows(path string, minFields int, fn func(fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("instance: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < minFields {
			continue
		}
		if err = fn(fields); err != nil {
			return err
		}
	}
	if err = sc.Err(); err != nil {
		return fmt.Errorf("instance: %s: %w", path, err)
	}

	return nil
}

// nodeNetRow converts a "<node> <net>" row to 0-based ids with bounds checks.
func nodeNetRow(fields []string, numNodes, numNets int, file string) (int, int, error) {
	node, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("instance: %s: %w", file, err)
	}
	net, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("instance: %s: %w", file, err)
	}
	if node < 1 || node > numNodes {
		return 0, 0, fmt.Errorf("%w: %s node %d", ErrNodeOutOfRange, file, node)
	}
	if net < 1 || net > numNets {
		return 0, 0, fmt.Errorf("%w: %s net %d", ErrNodeOutOfRange, file, net)
	}

	return node - 1, net - 1, nil
}

// nodePairRow converts a "<tail> <head> ..." row to 0-based ids with
// bounds checks.
func nodePairRow(fields []string, numNodes int, file string) (int, int, error) {
	tail, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("instance: %s: %w", file, err)
	}
	head, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("instance: %s: %w", file, err)
	}
	if tail < 1 || tail > numNodes || head < 1 || head > numNodes {
		return 0, 0, fmt.Errorf("%w: %s arc %d→%d", ErrNodeOutOfRange, file, tail, head)
	}

	return tail - 1, head - 1, nil
}
