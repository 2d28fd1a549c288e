// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bintree

import (
	"fmt"
	"io"
)

// ItemIterator allows callers of Ascend to iterate in-order over the
// elements of the tree.  When this function returns false, iteration stops
// and Ascend returns immediately.
type ItemIterator[T any] func(v T) bool

// Ascend calls the iterator for every element in the tree in ascending
// order, until iterator returns false.
//
// Ascend is read-only.  Mutating the tree from inside the iterator is
// undefined behavior.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	ascend(t.root, iterator)
}

func ascend[T any](n *node[T], iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	if !ascend(n.left, iter) {
		return false
	}
	if !iter(n.value) {
		return false
	}
	return ascend(n.right, iter)
}

// Iterator is a forward-only cursor over the tree's elements in ascending
// order.  Obtain one with Begin; the sequence ends when Valid reports
// false.  Calling Begin again restarts from the minimum element.
//
// An Iterator holds no parent pointers and no recorded path: advancing past
// a node with no right child re-descends from the root to locate the
// successor.  Mutating the tree while iterating is undefined behavior; the
// tree does not detect it.
type Iterator[T any] struct {
	tree *Tree[T]
	cur  *node[T]
}

// Begin returns an iterator positioned at the minimum element, or an
// already exhausted iterator if the tree is empty.
func (t *Tree[T]) Begin() *Iterator[T] {
	cur := t.root
	if cur != nil {
		for cur.left != nil {
			cur = cur.left
		}
	}
	return &Iterator[T]{tree: t, cur: cur}
}

// Valid returns false once the iterator has moved past the maximum element.
func (it *Iterator[T]) Valid() bool {
	return it.cur != nil
}

// Value returns the current element.  It must not be called when Valid is
// false.
func (it *Iterator[T]) Value() T {
	return it.cur.value
}

// Next advances to the next element in ascending order.  Calling Next on an
// exhausted iterator is a no-op.
//
// When the current node has no right child the successor is found by
// re-descending from the root, which costs O(height) comparisons for that
// step.
func (it *Iterator[T]) Next() {
	if it.cur != nil {
		it.cur = it.tree.successor(it.cur)
	}
}

// successor returns the node holding the next element after n in ascending
// order, or nil if n holds the maximum.  With a right child, that is the
// leftmost descendant of the right subtree.  Without one, the tree is
// re-descended from the root toward n, keeping the most recent ancestor
// left-turned away from as the candidate.
func (t *Tree[T]) successor(n *node[T]) *node[T] {
	if n.right != nil {
		next := n.right
		for next.left != nil {
			next = next.left
		}
		return next
	}
	var succ *node[T]
	ancestor := t.root
	for ancestor != n {
		if t.less(n.value, ancestor.value) {
			succ = ancestor
			ancestor = ancestor.left
		} else {
			ancestor = ancestor.right
		}
	}
	return succ
}

// PrintIf writes the elements of the tree satisfying pred to w in ascending
// order, each followed by a single space, then terminates the line.
//
// PrintIf is a free function composed over the public iteration surface; it
// uses no container internals.
func PrintIf[T any](w io.Writer, t *Tree[T], pred func(T) bool) {
	for it := t.Begin(); it.Valid(); it.Next() {
		if v := it.Value(); pred(v) {
			fmt.Fprintf(w, "%v ", v)
		}
	}
	fmt.Fprintln(w)
}

// FilterFunc collects the elements of the tree satisfying pred, in
// ascending order.
func FilterFunc[T any](t *Tree[T], pred func(T) bool) (out []T) {
	for it := t.Begin(); it.Valid(); it.Next() {
		if v := it.Value(); pred(v) {
			out = append(out, v)
		}
	}
	return
}
