package viewstate

import "slices"

// notifier fans a change signal out to subscribers in subscription order.
// Units are driven from one event loop, so there is no locking.
type notifier struct {
	next int
	subs map[int]func()
}

// Subscribe registers fn to run after every change. The returned func
// removes the subscription.
func (n *notifier) Subscribe(fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() { delete(n.subs, id) }
}

func (n *notifier) notify() {
	if len(n.subs) == 0 {
		return
	}
	ids := make([]int, 0, len(n.subs))
	for id := range n.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		// a subscriber may cancel another one mid-dispatch
		if fn, ok := n.subs[id]; ok {
			fn()
		}
	}
}
