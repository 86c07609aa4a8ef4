package journal

import (
	"github.com/pkg/errors"

	"github.com/oahshtsua/lab/bst/algos/bst"
)

type EventType byte

const (
	_ EventType = iota
	EventDelete
	EventInsert
)

func (t EventType) String() string {
	switch t {
	case EventDelete:
		return "delete"
	case EventInsert:
		return "insert"
	}
	return "unknown"
}

type Event struct {
	Sequence uint64    `json:"seq"`
	Type     EventType `json:"type"`
	Key      int       `json:"key"`
}

type Journal interface {
	WriteInsert(key int)
	WriteDelete(key int)
	Err() <-chan error
	Run()
	ReadEvents() (<-chan Event, <-chan error)
	Close() error
}

// Apply performs a single event on the tree rooted at root and returns the new
// root.
func Apply(root *bst.Node, event Event) (*bst.Node, error) {
	switch event.Type {
	case EventInsert:
		if root == nil {
			return bst.New(event.Key), nil
		}
		root.Insert(event.Key)
		return root, nil
	case EventDelete:
		return root.Delete(event.Key), nil
	}
	return root, errors.Errorf("event %d: unknown event type %d", event.Sequence, event.Type)
}

// Replay drains the channels returned by ReadEvents onto root. It stops at
// the first error or once events is closed; a closed errs channel does not
// end the replay.
func Replay(root *bst.Node, events <-chan Event, errs <-chan error) (*bst.Node, error) {
	var err error

	for events != nil {
		select {
		case e, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if e != nil {
				return root, e
			}
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if root, err = Apply(root, event); err != nil {
				return root, err
			}
		}
	}

	// an error may still be pending once the events are exhausted
	select {
	case e := <-errs:
		return root, e
	default:
	}

	return root, nil
}
