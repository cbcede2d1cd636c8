package sukima_test

import (
	"testing"

	"github.com/edwinsyarief/sukima"
)

type collisionEvent struct {
	A, B uint32
}

type damageEvent struct {
	Target uint32
	Amount int
}

// go test -run ^TestEventBusPublishSubscribe$ . -count 1
func TestEventBusPublishSubscribe(t *testing.T) {
	bus := &sukima.EventBus{}

	var got []collisionEvent
	sukima.Subscribe(bus, func(ev collisionEvent) {
		got = append(got, ev)
	})

	sukima.Publish(bus, collisionEvent{A: 1, B: 2})
	sukima.Publish(bus, collisionEvent{A: 3, B: 4})

	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	if got[0].A != 1 || got[1].B != 4 {
		t.Errorf("Events delivered out of order or corrupted: %+v", got)
	}
}

// go test -run ^TestEventBusMultipleHandlers$ . -count 1
func TestEventBusMultipleHandlers(t *testing.T) {
	bus := &sukima.EventBus{}

	var order []int
	sukima.Subscribe(bus, func(damageEvent) { order = append(order, 1) })
	sukima.Subscribe(bus, func(damageEvent) { order = append(order, 2) })

	sukima.Publish(bus, damageEvent{Target: 7, Amount: 3})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Handlers should run in subscription order, got %v", order)
	}
}

// go test -run ^TestEventBusTypeIsolation$ . -count 1
func TestEventBusTypeIsolation(t *testing.T) {
	bus := &sukima.EventBus{}

	collisions := 0
	sukima.Subscribe(bus, func(collisionEvent) { collisions++ })

	// Publishing a type with no subscribers is a no-op.
	sukima.Publish(bus, damageEvent{})
	if collisions != 0 {
		t.Errorf("Handler fired for a different event type, count=%d", collisions)
	}
}

// go test -run ^TestEventBusClear$ . -count 1
func TestEventBusClear(t *testing.T) {
	bus := &sukima.EventBus{}
	fired := false
	sukima.Subscribe(bus, func(collisionEvent) { fired = true })

	bus.Clear()
	sukima.Publish(bus, collisionEvent{})
	if fired {
		t.Error("Handler fired after Clear")
	}
}
