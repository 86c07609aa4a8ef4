package bst

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Keys returns the keys of the subtree rooted at n in order.
func Keys(n *Node) []int {
	res := []int{}
	if n != nil {
		res = append(res, Keys(n.left)...)
		res = append(res, n.key)
		res = append(res, Keys(n.right)...)
	}
	return res
}

// Validate checks the order and uniqueness invariants of the subtree rooted
// at n and reports every violation it finds.
func Validate(n *Node) (err error) {
	validateRange(n, nil, nil, &err)

	keys := Keys(n)
	for i := 1; i < len(keys); i++ {
		if keys[i-1] == keys[i] {
			err = multierr.Append(err, errors.Errorf("duplicate key %d", keys[i]))
		}
	}
	return err
}

// validateRange checks that every key below n lies strictly between lo and hi.
// Nil bounds are open.
func validateRange(n *Node, lo, hi *int, err *error) {
	if n == nil {
		return
	}

	if lo != nil && n.key <= *lo {
		*err = multierr.Append(*err, errors.Errorf("key %d is not greater than ancestor %d", n.key, *lo))
	}
	if hi != nil && n.key >= *hi {
		*err = multierr.Append(*err, errors.Errorf("key %d is not less than ancestor %d", n.key, *hi))
	}

	key := n.key
	validateRange(n.left, lo, &key, err)
	validateRange(n.right, &key, hi, err)
}
