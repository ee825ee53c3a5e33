package btree

import "go.uber.org/zap"

// Event identifies a structural change made by the tree.
type Event int

const (
	EventSplit Event = iota
	EventMerge
	EventBorrowPrev
	EventBorrowNext
	EventRootGrow
	EventRootCollapse
)

func (e Event) String() string {
	switch e {
	case EventSplit:
		return "split"
	case EventMerge:
		return "merge"
	case EventBorrowPrev:
		return "borrow_prev"
	case EventBorrowNext:
		return "borrow_next"
	case EventRootGrow:
		return "root_grow"
	case EventRootCollapse:
		return "root_collapse"
	default:
		return "unknown"
	}
}

// Observer is called synchronously for every structural change.
type Observer func(Event)

type Option func(*BTree)

// WithLogger routes restructuring debug logs to l.
func WithLogger(l *zap.Logger) Option {
	return func(bt *BTree) {
		if l != nil {
			bt.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(bt *BTree) { bt.observer = o }
}
