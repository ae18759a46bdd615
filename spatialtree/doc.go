// Package spatialtree indexes network nodes into a hierarchical tree keyed
// on geocell ancestor chains (C2): inserting a node merges its
// root->...->leaf chain into the tree, and FindClosestNodes descends the
// tree pruning subtrees whose cell cannot intersect a query cap, collecting
// node IDs from the leaves that survive.
package spatialtree
