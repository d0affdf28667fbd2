// SPDX-License-Identifier: MIT
// Package: nestplot/nested
//
// tree.go — validation of the dichotomy tree and per-category paths.
//
// Invariants after buildTree succeeds:
//   • exactly one root whose sides cover every category;
//   • every side holding more than one category is split by exactly one child;
//   • single-category sides are leaves;
//   • paths[c] lists (dichotomy, side) from the root down to category c.

package nested

import "sort"

// side selects a branch of a dichotomy.
type side uint8

const (
	leftSide side = iota
	rightSide
)

// step is one edge on a category's path.
type step struct {
	d    int
	side side
}

// tree is the validated structure: root index and per-category paths.
type tree struct {
	root  int
	paths map[string][]step
}

// buildTree validates the nesting of ds over categories.
// Complexity: O(D² · k) for D dichotomies and k categories; D = k−1 is small.
func buildTree(categories []string, ds []DichotomySpec) (tree, error) {
	const op = "buildTree"
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c] = struct{}{}
	}
	if len(ds) != len(categories)-1 {
		return tree{}, nestedErrorf(op, "%d dichotomies for %d categories: %w", len(ds), len(categories), ErrNotNested)
	}

	// Stage 1: each dichotomy's sides are disjoint, non-empty, known categories.
	unions := make([]string, len(ds))
	sides := make([][2]string, len(ds))
	for i, d := range ds {
		if len(d.Left) == 0 || len(d.Right) == 0 {
			return tree{}, nestedErrorf(op, "dichotomy %q: empty side: %w", d.Name, ErrBadSpec)
		}
		seen := make(map[string]struct{})
		for _, c := range append(append([]string(nil), d.Left...), d.Right...) {
			if _, ok := known[c]; !ok {
				return tree{}, nestedErrorf(op, "dichotomy %q: category %q: %w", d.Name, c, ErrBadSpec)
			}
			if _, dup := seen[c]; dup {
				return tree{}, nestedErrorf(op, "dichotomy %q: category %q repeated: %w", d.Name, c, ErrBadSpec)
			}
			seen[c] = struct{}{}
		}
		sides[i] = [2]string{setKey(d.Left), setKey(d.Right)}
		unions[i] = setKey(append(append([]string(nil), d.Left...), d.Right...))
	}

	// Stage 2: exactly one root.
	all := setKey(categories)
	root := -1
	for i, u := range unions {
		if u != all {
			continue
		}
		if root >= 0 {
			return tree{}, nestedErrorf(op, "dichotomies %q and %q both split every category: %w", ds[root].Name, ds[i].Name, ErrNotNested)
		}
		root = i
	}
	if root < 0 {
		return tree{}, nestedErrorf(op, "no dichotomy splits every category: %w", ErrNotNested)
	}

	// Stage 3: attach each non-root dichotomy to the side it splits.
	child := make(map[step]int)
	for i, u := range unions {
		if i == root {
			continue
		}
		parent := step{d: -1}
		for j := range ds {
			if j == i {
				continue
			}
			for s := leftSide; s <= rightSide; s++ {
				if sides[j][s] == u {
					parent = step{d: j, side: s}
				}
			}
		}
		if parent.d < 0 {
			return tree{}, nestedErrorf(op, "dichotomy %q splits no side of another dichotomy: %w", ds[i].Name, ErrNotNested)
		}
		if prev, dup := child[parent]; dup {
			return tree{}, nestedErrorf(op, "dichotomies %q and %q split the same side: %w", ds[prev].Name, ds[i].Name, ErrNotNested)
		}
		child[parent] = i
	}

	// Stage 4: walk from the root to every category.
	paths := make(map[string][]step, len(categories))
	for _, c := range categories {
		var path []step
		d := root
		for {
			s := leftSide
			if contains(ds[d].Right, c) {
				s = rightSide
			}
			path = append(path, step{d: d, side: s})
			members := ds[d].Left
			if s == rightSide {
				members = ds[d].Right
			}
			if len(members) == 1 {
				break
			}
			next, ok := child[step{d: d, side: s}]
			if !ok {
				return tree{}, nestedErrorf(op, "side of %q holding %q is not split: %w", ds[d].Name, c, ErrNotNested)
			}
			d = next
		}
		paths[c] = path
	}

	return tree{root: root, paths: paths}, nil
}

// setKey canonicalizes a category set as a sorted, NUL-joined string.
func setKey(xs []string) string {
	s := append([]string(nil), xs...)
	sort.Strings(s)
	key := ""
	for i, x := range s {
		if i > 0 {
			key += "\x00"
		}
		key += x
	}
	return key
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
