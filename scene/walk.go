// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

const (
	// Continue continues walking into the children of the node.
	Continue = true

	// Break skips the children of the node.
	Break = false
)

// WalkDown calls fun on n and, in depth-first pre-order, on all of
// its descendants. If fun returns [Break] for a node, its children
// are not visited.
func WalkDown(n Node, fun func(n Node) bool) {
	if n == nil {
		return
	}
	if !fun(n) {
		return
	}
	for i := range n.NumChildren() {
		WalkDown(n.ChildNode(i), fun)
	}
}

// IsTreeEnabled returns whether n and every one of its ancestors
// are enabled.
func IsTreeEnabled(n Node) bool {
	for ; n != nil; n = n.ParentNode() {
		if !n.IsEnabled() {
			return false
		}
	}
	return true
}
