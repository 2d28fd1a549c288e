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

// Package bintree implements an in-memory binary search tree over any
// element type.
//
// bintree stores values in an unbalanced binary search tree ordered by a
// caller-supplied strict less-than relation, with duplicates detected by a
// separate caller-supplied equality relation.  Both relations are fixed at
// construction and must agree with each other: if equal(a, b) holds, then
// neither less(a, b) nor less(b, a) may hold.  That consistency is a caller
// obligation; it is not checked.
//
// The tree performs no rebalancing, so insertion order determines its shape:
// random orders give O(log n) lookups on average while sorted input
// degenerates the tree into a list.  There is no delete operation.
//
// Write operations are not safe for concurrent use by multiple goroutines.
// If shared, callers must serialize all access externally.
package bintree

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// ErrDuplicate is returned by Insert when the value being inserted is equal,
// per the tree's equality relation, to an element already present.  Use
// errors.Is to test for it.
var ErrDuplicate = errors.New("duplicate element insertion is not allowed")

// LessFunc reports whether a orders strictly before b.
//
// This must provide a strict ordering consistent with the EqualFunc handed
// to the same tree.
type LessFunc[T any] func(a, b T) bool

// EqualFunc reports whether a and b are the same element.
type EqualFunc[T any] func(a, b T) bool

const (
	DefaultFreeListSize = 32
)

// FreeList represents a free list of tree nodes.  By default each Tree has
// its own FreeList, but multiple Trees can share the same FreeList.
// Two Trees using the same freelist are not safe for concurrent write access.
type FreeList[T any] struct {
	freelist []*node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode(value T) (n *node[T]) {
	index := len(f.freelist) - 1
	if index < 0 {
		return &node[T]{value: value}
	}
	f.freelist, n = f.freelist[:index], f.freelist[index]
	n.value = value
	return
}

func (f *FreeList[T]) freeNode(n *node[T]) {
	if len(f.freelist) < cap(f.freelist) {
		var zero T
		n.value = zero // clear to allow GC
		n.left = nil
		n.right = nil
		f.freelist = append(f.freelist, n)
	}
}

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that every value in the left
// subtree orders strictly before node.value and every value in the right
// subtree orders strictly after it, per the owning tree's less relation.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is an unbalanced binary search tree holding elements of type T.
//
// Tree keeps an O(1) element count and owns its nodes exclusively: no node
// is ever shared between trees, so Clone, CopyFrom and Subtree always
// produce fully independent structures.
type Tree[T any] struct {
	root     *node[T]
	less     LessFunc[T]
	equal    EqualFunc[T]
	length   int
	freelist *FreeList[T]
}

// New creates an empty tree ordered by less, with duplicates detected by
// equal.  Both functions must be non-nil and must remain consistent for the
// life of the tree.
func New[T any](less LessFunc[T], equal EqualFunc[T]) *Tree[T] {
	return NewWithFreeList(less, equal, NewFreeList[T](DefaultFreeListSize))
}

// NewWithFreeList creates an empty tree that uses the given node free list.
func NewWithFreeList[T any](less LessFunc[T], equal EqualFunc[T], f *FreeList[T]) *Tree[T] {
	if less == nil || equal == nil {
		panic("nil comparison function")
	}
	return &Tree[T]{less: less, equal: equal, freelist: f}
}

// NewOrdered creates an empty tree for any ordered type, using the native
// < and == operators as the two relations.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(
		func(a, b T) bool { return a < b },
		func(a, b T) bool { return a == b },
	)
}

// NewFromSlice creates a tree and inserts the given values in slice order.
//
// If any value is a duplicate of an earlier one, every node built so far is
// released and NewFromSlice returns (nil, err): a partially constructed tree
// is never handed back.
func NewFromSlice[T any](values []T, less LessFunc[T], equal EqualFunc[T]) (*Tree[T], error) {
	t := New(less, equal)
	for _, v := range values {
		if err := t.Insert(v); err != nil {
			t.Clear()
			return nil, err
		}
	}
	return t, nil
}

// Insert adds value to the tree.  If an element equal to value is already
// present, Insert returns ErrDuplicate (wrapped with the offending value)
// and leaves the tree completely unchanged.
func (t *Tree[T]) Insert(value T) error {
	n, err := t.insert(t.root, value)
	if err != nil {
		return err
	}
	t.root = n
	return nil
}

func (t *Tree[T]) insert(n *node[T], value T) (*node[T], error) {
	if n == nil {
		t.length++
		return t.freelist.newNode(value), nil
	}
	// Equality is consulted before ordering at every node, so a duplicate
	// is still caught when the two relations disagree about some pair.
	if t.equal(value, n.value) {
		return nil, errors.Wrapf(ErrDuplicate, "insert %v", value)
	}
	if t.less(value, n.value) {
		left, err := t.insert(n.left, value)
		if err != nil {
			return nil, err
		}
		n.left = left
	} else {
		right, err := t.insert(n.right, value)
		if err != nil {
			return nil, err
		}
		n.right = right
	}
	return n, nil
}

// Has returns true if an element equal to value is in the tree.
func (t *Tree[T]) Has(value T) bool {
	return t.find(t.root, value) != nil
}

func (t *Tree[T]) find(n *node[T], value T) *node[T] {
	if n == nil {
		return nil
	}
	if t.equal(n.value, value) {
		return n
	}
	if t.less(value, n.value) {
		return t.find(n.left, value)
	}
	return t.find(n.right, value)
}

// Len returns the number of elements currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Subtree returns a new, independently owned tree that duplicates the
// subtree rooted at the element equal to value.  If no such element exists,
// the returned tree is simply empty; a missing value is not an error.
// The result's length is recounted from the copied nodes.
func (t *Tree[T]) Subtree(value T) *Tree[T] {
	sub := NewWithFreeList(t.less, t.equal, t.freelist)
	if n := t.find(t.root, value); n != nil {
		sub.root = copySubtree(n, sub.freelist)
		sub.length = countNodes(sub.root)
	}
	return sub
}

// Clone returns a structurally identical, node-disjoint duplicate of the
// tree.  The duplicate shares only the comparison functions and freelist;
// mutating either tree never affects the other.
func (t *Tree[T]) Clone() *Tree[T] {
	c := NewWithFreeList(t.less, t.equal, t.freelist)
	c.root = copySubtree(t.root, c.freelist)
	c.length = t.length
	return c
}

// CopyFrom replaces the contents of t with a node-disjoint duplicate of
// src, releasing t's previous nodes first.  CopyFrom(t) on itself is a
// no-op.  The source's comparison functions are adopted along with its
// elements.
func (t *Tree[T]) CopyFrom(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.less = src.less
	t.equal = src.equal
	t.root = copySubtree(src.root, t.freelist)
	t.length = src.length
}

// Clear removes every element, releasing each node exactly once in
// post-order (both children before their parent) back to the freelist.
func (t *Tree[T]) Clear() {
	release(t.root, t.freelist)
	t.root = nil
	t.length = 0
}

func copySubtree[T any](src *node[T], f *FreeList[T]) *node[T] {
	if src == nil {
		return nil
	}
	dst := f.newNode(src.value)
	dst.left = copySubtree(src.left, f)
	dst.right = copySubtree(src.right, f)
	return dst
}

func countNodes[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

func release[T any](n *node[T], f *FreeList[T]) {
	if n == nil {
		return
	}
	release(n.left, f)
	release(n.right, f)
	f.freeNode(n)
}

// Fprint writes the elements to w in ascending order, each followed by a
// single space.
func (t *Tree[T]) Fprint(w io.Writer) {
	t.Ascend(func(v T) bool {
		fmt.Fprintf(w, "%v ", v)
		return true
	})
}

// String returns the ascending-order listing of elements separated by
// single spaces.
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.Fprint(&sb)
	return strings.TrimSuffix(sb.String(), " ")
}
