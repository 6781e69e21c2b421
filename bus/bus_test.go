package bus

import "testing"

const topicUI = "ui/event"

func TestBasicPubSub(t *testing.T) {
	b := NewBus()
	conn := b.NewConnection("test")

	var got []any
	conn.Subscribe(topicUI, func(m *Message) {
		got = append(got, m.Payload)
	})

	b.Publish(topicUI, "hello")

	if len(got) != 1 || got[0].(string) != "hello" {
		t.Fatalf("expected one delivery of 'hello', got %v", got)
	}
}

func TestDispatchInSubscriptionOrder(t *testing.T) {
	b := NewBus()
	conn := b.NewConnection("test")

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		conn.Subscribe(topicUI, func(*Message) { order = append(order, i) })
	}

	b.Publish(topicUI, nil)

	for i, v := range order {
		if v != i {
			t.Fatalf("listeners ran out of order: %v", order)
		}
	}
	if len(order) != 4 {
		t.Fatalf("expected 4 listeners to run, got %d", len(order))
	}
}

// A publish issued from inside a listener must queue behind the in-flight
// message, not nest: every listener of the first message runs before any
// listener of the second.
func TestReentrantPublishQueuesFIFO(t *testing.T) {
	b := NewBus()
	conn := b.NewConnection("test")

	var trace []string
	conn.Subscribe(topicUI, func(m *Message) {
		trace = append(trace, "a:"+m.Payload.(string))
		if m.Payload.(string) == "first" {
			conn.Publish(topicUI, "second")
		}
	})
	conn.Subscribe(topicUI, func(m *Message) {
		trace = append(trace, "b:"+m.Payload.(string))
	})

	b.Publish(topicUI, "first")

	want := []string{"a:first", "b:first", "a:second", "b:second"}
	if len(trace) != len(want) {
		t.Fatalf("trace length %d, want %d: %v", len(trace), len(want), trace)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace[%d] = %q, want %q (full: %v)", i, trace[i], want[i], trace)
		}
	}
}

func TestUnsubscribeMidDispatchIsDeferred(t *testing.T) {
	b := NewBus()
	conn := b.NewConnection("test")

	var subA *Subscription
	countA, countB := 0, 0
	subA = conn.Subscribe(topicUI, func(*Message) {
		countA++
		subA.Unsubscribe() // deferred until the publish completes
	})
	conn.Subscribe(topicUI, func(*Message) { countB++ })

	b.Publish(topicUI, nil)
	if countA != 1 || countB != 1 {
		t.Fatalf("first publish: countA=%d countB=%d, want 1/1", countA, countB)
	}

	b.Publish(topicUI, nil)
	if countA != 1 {
		t.Fatalf("unsubscribed listener ran again: countA=%d", countA)
	}
	if countB != 2 {
		t.Fatalf("surviving listener skipped: countB=%d", countB)
	}
}

func TestListenerPanicIsIsolated(t *testing.T) {
	b := NewBus()
	conn := b.NewConnection("test")

	ran := false
	conn.Subscribe(topicUI, func(*Message) { panic("boom") })
	conn.Subscribe(topicUI, func(*Message) { ran = true })

	b.Publish(topicUI, nil) // must not panic out of the bus
	if !ran {
		t.Fatal("listener after the panicking one did not run")
	}
}

func TestDisconnectRemovesAllSubscriptions(t *testing.T) {
	b := NewBus()
	conn := b.NewConnection("test")

	count := 0
	conn.Subscribe(topicUI, func(*Message) { count++ })
	conn.Subscribe("timer/phase", func(*Message) { count++ })
	conn.Disconnect()

	b.Publish(topicUI, nil)
	b.Publish("timer/phase", nil)
	if count != 0 {
		t.Fatalf("disconnected connection still received %d messages", count)
	}
}
