// Package bus implements the firmware's in-process publish/subscribe
// registry. Dispatch is synchronous and in subscription order; a publish
// issued from inside a listener is queued FIFO behind the message being
// delivered rather than nesting, so dispatch depth stays bounded and
// ordering holds across the whole system.
//
// The bus is single-threaded by design: it must only be driven from the
// control loop goroutine. Any interrupt-driven source has to enqueue into
// its own thread-safe queue and feed the bus from the loop.
package bus

import (
	"relaytimer-go/x/timex"
)

// Handler consumes one delivered message.
type Handler func(*Message)

// Message is a published event. Payload is passed by value to every
// listener of the topic.
type Message struct {
	Topic   string
	Payload any
	TSms    int64
}

// Subscription is one (topic, handler) registration.
type Subscription struct {
	topic string
	fn    Handler
	conn  *Connection
	dead  bool
}

func (s *Subscription) Topic() string { return s.topic }

// Unsubscribe removes the subscription. Called from inside a dispatch it
// takes effect after the current publish completes.
func (s *Subscription) Unsubscribe() { s.conn.Unsubscribe(s) }

// Bus routes messages to subscribers.
type Bus struct {
	topics map[string][]*Subscription

	queue       []*Message
	dispatching bool
	deferred    []*Subscription // unsubscribes requested mid-dispatch
}

func NewBus() *Bus {
	return &Bus{topics: map[string][]*Subscription{}}
}

// NewConnection creates a per-component handle owning its subscriptions.
func (b *Bus) NewConnection(id string) *Connection {
	return &Connection{bus: b, id: id}
}

// Publish delivers payload to every listener of topic, in subscription
// order. Re-entrant calls append to the in-flight queue and return.
func (b *Bus) Publish(topic string, payload any) {
	b.queue = append(b.queue, &Message{Topic: topic, Payload: payload, TSms: timex.NowMs()})
	if b.dispatching {
		return
	}
	b.dispatching = true
	for len(b.queue) > 0 {
		msg := b.queue[0]
		b.queue = b.queue[1:]
		b.deliver(msg)
	}
	b.dispatching = false

	// Apply unsubscribes deferred during dispatch.
	for _, sub := range b.deferred {
		b.remove(sub)
	}
	b.deferred = nil
}

func (b *Bus) deliver(msg *Message) {
	// Snapshot: listeners added mid-dispatch only see later messages, and
	// mid-dispatch unsubscribes take effect only once the queue drains.
	subs := b.topics[msg.Topic]
	for _, sub := range subs {
		b.invoke(sub, msg)
	}
}

// invoke isolates listener faults: a panicking handler is logged and must
// not prevent the remaining listeners from running.
func (b *Bus) invoke(sub *Subscription, msg *Message) {
	defer func() {
		if r := recover(); r != nil {
			println("[bus] listener panic on", msg.Topic, "conn:", sub.conn.id, "err:", panicText(r))
		}
	}()
	sub.fn(msg)
}

func (b *Bus) addSubscription(sub *Subscription) {
	b.topics[sub.topic] = append(b.topics[sub.topic], sub)
}

func (b *Bus) unsubscribe(sub *Subscription) {
	if sub.dead {
		return
	}
	sub.dead = true
	if b.dispatching {
		b.deferred = append(b.deferred, sub)
		return
	}
	b.remove(sub)
}

func (b *Bus) remove(sub *Subscription) {
	subs := b.topics[sub.topic]
	for i, s := range subs {
		if s == sub {
			b.topics[sub.topic] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
	if len(b.topics[sub.topic]) == 0 {
		delete(b.topics, sub.topic)
	}
}

func panicText(r any) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return "panic"
	}
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

// Connection groups the subscriptions of one component.
type Connection struct {
	bus  *Bus
	subs []*Subscription
	id   string
}

// Publish sends a message via the bus.
func (c *Connection) Publish(topic string, payload any) {
	c.bus.Publish(topic, payload)
}

// Subscribe registers a handler owned by this connection.
func (c *Connection) Subscribe(topic string, fn Handler) *Subscription {
	sub := &Subscription{topic: topic, fn: fn, conn: c}
	c.bus.addSubscription(sub)
	c.subs = append(c.subs, sub)
	return sub
}

// Unsubscribe removes a subscription owned by this connection.
func (c *Connection) Unsubscribe(sub *Subscription) {
	c.bus.unsubscribe(sub)
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
}

// Disconnect removes all subscriptions of this connection.
func (c *Connection) Disconnect() {
	subs := c.subs
	c.subs = nil
	for _, sub := range subs {
		c.bus.unsubscribe(sub)
	}
}
