// File: lixenwraith/natsort/config/helper.go
package config

import "strings"

// setNestedValue stores value at a dotted path, creating intermediate tables.
// A non-table value in the way is replaced.
func setNestedValue(nested map[string]any, path string, value any) {
	parents, leaf := splitParent(path)
	table := nested
	for _, seg := range parents {
		child, ok := table[seg].(map[string]any)
		if !ok {
			child = make(map[string]any)
			table[seg] = child
		}
		table = child
	}
	table[leaf] = value
}

func splitParent(path string) ([]string, string) {
	segs := strings.Split(path, ".")
	return segs[:len(segs)-1], segs[len(segs)-1]
}

// navigateToPath returns the subtree at path, or nil when it does not exist.
func navigateToPath(nested map[string]any, path string) any {
	path = strings.TrimSuffix(path, ".")
	if path == "" {
		return nested
	}

	var node any = nested
	for seg := range strings.SplitSeq(path, ".") {
		table, ok := node.(map[string]any)
		if !ok {
			return nil
		}
		if node, ok = table[seg]; !ok {
			return nil
		}
	}
	return node
}

// isValidKeySegment reports whether s is a TOML bare key.
func isValidKeySegment(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		switch {
		case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
			return false
		case r == '_' || r == '-':
			return false
		}
		return true
	}) < 0
}
