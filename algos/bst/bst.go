// Binary Search Tree implementation

package bst

import "github.com/pkg/errors"

// ErrEmptyTree is returned by queries that have no answer on an empty tree.
var ErrEmptyTree = errors.New("bst: tree is empty")

// Node is both a tree node and the tree rooted at it. A nil *Node is the
// empty tree.
type Node struct {
	key   int
	left  *Node
	right *Node
}

func New(key int) *Node {
	return &Node{key: key}
}

func (n *Node) Key() int {
	return n.key
}

func (n *Node) Left() *Node {
	return n.left
}

func (n *Node) Right() *Node {
	return n.right
}

// Insert adds key to the subtree rooted at n. Duplicate keys are ignored.
// The receiver must not be nil; an empty tree starts with New.
func (n *Node) Insert(key int) {
	if n.key == key {
		return
	}

	if n.key < key {
		if n.right != nil {
			n.right.Insert(key)
		} else {
			n.right = New(key)
		}
	} else {
		if n.left != nil {
			n.left.Insert(key)
		} else {
			n.left = New(key)
		}
	}
}

// Height is the number of nodes on the longest path from n down to a leaf.
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.Height(), n.right.Height())
}

func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.Count() + n.right.Count()
}

func (n *Node) Min() (int, error) {
	if n == nil {
		return 0, ErrEmptyTree
	}
	if n.left == nil {
		return n.key, nil
	}
	return n.left.Min()
}

// Delete removes key from the subtree rooted at n and returns the new root of
// that subtree. Callers must store the result in the slot that held n:
//
//	root = root.Delete(key)
//
// Deleting a key that is not present leaves the tree unchanged.
func (n *Node) Delete(key int) *Node {
	if n == nil {
		return nil
	}

	switch {
	case key < n.key:
		n.left = n.left.Delete(key)
		return n
	case key > n.key:
		n.right = n.right.Delete(key)
		return n
	}

	// Node with at most one child
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	// Node with two children
	successor := n.right
	for successor.left != nil {
		successor = successor.left
	}
	n.key = successor.key
	n.right = n.right.Delete(successor.key)
	return n
}
