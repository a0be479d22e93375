package diagram

// Traversal colors for cycle detection.
const (
	nodeUnseen = iota
	nodeOnPath
	nodeDone
)

// validTreeStructure reports whether a tree element's references form a
// valid hierarchy: the root and every item endpoint must reference an
// existing diamond element, the parent-to-element edges must be
// acyclic, and every referenced node must be reachable from the root.
// Callers collapse all sub-causes into one generic error message.
func validTreeStructure(elements map[string]any, tree map[string]any) bool {
	root, ok := tree["root"].(string)
	if !ok || !isDiamond(elements, root) {
		return false
	}

	items, ok := tree["items"].([]any)
	if !ok {
		return false
	}

	children := make(map[string][]string)
	nodes := map[string]bool{root: true}
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return false
		}
		parent, pok := obj["parent"].(string)
		element, eok := obj["element"].(string)
		if !pok || !eok {
			return false
		}
		if !isDiamond(elements, parent) || !isDiamond(elements, element) {
			return false
		}
		children[parent] = append(children[parent], element)
		nodes[parent] = true
		nodes[element] = true
	}

	state := make(map[string]int, len(nodes))
	var walk func(string) bool
	walk = func(n string) bool {
		state[n] = nodeOnPath
		for _, c := range children[n] {
			switch state[c] {
			case nodeOnPath:
				return false
			case nodeUnseen:
				if !walk(c) {
					return false
				}
			}
		}
		state[n] = nodeDone
		return true
	}
	if !walk(root) {
		return false
	}

	for n := range nodes {
		if state[n] != nodeDone {
			return false
		}
	}
	return true
}

func isDiamond(elements map[string]any, id string) bool {
	el, ok := elements[id].(map[string]any)
	if !ok {
		return false
	}
	typ, ok := el["type"].(string)
	return ok && ElementType(typ) == TypeDiamond
}
