/*
Implementation of an in-memory m-way B-tree over int64 keys.

## Terminology

order (m): maximum number of children of any node. a node holds at most m-1 keys

minimum degree (t): ceil(m/2). every node other than the root holds at least t-1 keys

leaf: node without children. whether a node is a leaf is fixed when the node is created; nodes never convert between leaf and internal

## Tricky Bits

When inserting:

- descent is performed by the nodes themselves. a node inserts into a leaf, or recurses into the child covering the key, and only afterwards checks whether that child overflowed
- a child is allowed to hold m keys (one over the limit) between returning from the recursive insert and being split by its parent. this is never visible outside of insertion
- the root is the only node which has no parent to split it. when it overflows the tree pushes a new root above it, which is the only way the tree grows in height

Duplicate keys are rejected: inserting a key which is already present leaves the tree untouched.

## Hacking

Be careful with go slices when moving keys or children into a new sibling. Copy into a freshly allocated slice, and clear the vacated child slots, so that no two nodes share a backing array.
*/
package btree
