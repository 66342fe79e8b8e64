// Package dom models the part of a browser document that the widgets depend
// on: a node tree for containment checks, scoped subscriptions for outside
// pointer-down and Escape key events, and a reference-counted scroll lock on
// the document body.
//
// Widgets never register listeners ad hoc. A widget acquires a Subscription
// when it opens and closes it when it closes or unmounts, so the number of
// live listeners on a Document always equals the number of open widgets.
//
// A Document is safe for concurrent use. Handlers are invoked outside the
// document lock, so a handler may close its own subscription or open new ones.
package dom

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// EscapeKey is the key name reported for the Escape key.
const EscapeKey = "Escape"

// Node is an element in the document tree. Only parent links are kept
// because containment is the only query widgets make.
type Node struct {
	ID     string
	parent *Node
}

// NewNode creates a node attached under parent. A nil parent creates a root.
func NewNode(parent *Node) *Node {
	return &Node{ID: uuid.NewString(), parent: parent}
}

// Parent returns the parent node, nil for roots.
func (n *Node) Parent() *Node {
	return n.parent
}

// Child creates a new node attached under n.
func (n *Node) Child() *Node {
	return NewNode(n)
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if n == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

type listenerKind int

const (
	kindOutsidePointer listenerKind = iota
	kindEscape
)

type listener struct {
	id    uint64
	kind  listenerKind
	scope *Node
	fn    func()
}

// Document dispatches pointer and keyboard events to scoped subscribers.
type Document struct {
	// Body is the root node every widget root hangs from.
	Body *Node

	mu        sync.Mutex
	nextID    uint64
	listeners map[uint64]listener
	locks     int
}

// NewDocument creates an empty document with a body node.
func NewDocument() *Document {
	return &Document{
		Body:      NewNode(nil),
		listeners: make(map[uint64]listener),
	}
}

// Subscription is a handle to a registered listener. Close releases it and
// may be called any number of times.
type Subscription struct {
	once    sync.Once
	release func()
}

// Close removes the listener from its document.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(s.release)
}

// OnOutsidePointerDown registers fn to run whenever a pointer-down lands on a
// node that is not scope or one of its descendants.
func (d *Document) OnOutsidePointerDown(scope *Node, fn func()) *Subscription {
	return d.add(listener{kind: kindOutsidePointer, scope: scope, fn: fn})
}

// OnEscape registers fn to run whenever the Escape key is pressed.
func (d *Document) OnEscape(fn func()) *Subscription {
	return d.add(listener{kind: kindEscape, fn: fn})
}

func (d *Document) add(l listener) *Subscription {
	d.mu.Lock()
	d.nextID++
	l.id = d.nextID
	d.listeners[l.id] = l
	d.mu.Unlock()

	id := l.id
	return &Subscription{release: func() {
		d.mu.Lock()
		delete(d.listeners, id)
		d.mu.Unlock()
	}}
}

// PointerDown dispatches a pointer-down event targeted at target. A nil
// target is treated as a press outside every scope.
func (d *Document) PointerDown(target *Node) {
	for _, l := range d.snapshot(kindOutsidePointer) {
		if l.scope.Contains(target) {
			continue
		}
		l.fn()
	}
}

// KeyDown dispatches a key press. Only Escape has subscribers.
func (d *Document) KeyDown(key string) {
	if key != EscapeKey {
		return
	}
	for _, l := range d.snapshot(kindEscape) {
		l.fn()
	}
}

// snapshot returns the listeners of a kind in registration order.
func (d *Document) snapshot(kind listenerKind) []listener {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]listener, 0, len(d.listeners))
	for _, l := range d.listeners {
		if l.kind == kind {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// ListenerCount returns the number of live subscriptions.
func (d *Document) ListenerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners)
}

// ScrollLock is a held lock on body scrolling.
type ScrollLock struct {
	once sync.Once
	doc  *Document
}

// LockScroll prevents the body from scrolling until every returned lock has
// been released.
func (d *Document) LockScroll() *ScrollLock {
	d.mu.Lock()
	d.locks++
	d.mu.Unlock()
	return &ScrollLock{doc: d}
}

// Release gives the lock back. Extra calls are ignored.
func (l *ScrollLock) Release() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		l.doc.mu.Lock()
		l.doc.locks--
		l.doc.mu.Unlock()
	})
}

// ScrollLocked reports whether any scroll lock is held.
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locks > 0
}
