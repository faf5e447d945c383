package feather4d

import (
	"unsafe"

	"github.com/akmonengine/feather4d/actor"
	"github.com/akmonengine/feather4d/collision"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
)

type pairKey struct {
	bodyA *actor.RigidBody
	bodyB *actor.RigidBody
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(bodyA, bodyB *actor.RigidBody) pairKey {
	ptrA := uintptr(unsafe.Pointer(bodyA))
	ptrB := uintptr(unsafe.Pointer(bodyB))

	if ptrB < ptrA {
		bodyA, bodyB = bodyB, bodyA
	}

	return pairKey{bodyA: bodyA, bodyB: bodyB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// CollisionEnterEvent is sent the first step a pair touches.
// Info is the last contact reported for the pair during that step.
type CollisionEnterEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
	Info  collision.Info
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

type CollisionStayEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
	Info  collision.Info
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

type CollisionExitEvent struct {
	BodyA *actor.RigidBody
	BodyB *actor.RigidBody
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

type activePair struct {
	bodyA, bodyB *actor.RigidBody
	info         collision.Info
}

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection, in first-seen order
	previousActivePairs map[pairKey]int
	previousOrder       []activePair
	currentActivePairs  map[pairKey]int
	currentOrder        []activePair
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 64),
		previousActivePairs: make(map[pairKey]int),
		currentActivePairs:  make(map[pairKey]int),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		*e = NewEvents()
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollisions is called during substeps to record the touching pairs
func (e *Events) recordCollisions(bodies []*actor.RigidBody, infos []collision.Info) {
	if e.currentActivePairs == nil {
		*e = NewEvents()
	}

	for _, info := range infos {
		bodyA, bodyB := bodies[info.A], bodies[info.B]
		key := makePairKey(bodyA, bodyB)

		if i, ok := e.currentActivePairs[key]; ok {
			e.currentOrder[i].info = info
			continue
		}
		e.currentActivePairs[key] = len(e.currentOrder)
		e.currentOrder = append(e.currentOrder, activePair{bodyA: bodyA, bodyB: bodyB, info: info})
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
// Should be called after all substeps
func (e *Events) processCollisionEvents() {
	for _, pair := range e.currentOrder {
		if _, ok := e.previousActivePairs[makePairKey(pair.bodyA, pair.bodyB)]; ok {
			e.buffer = append(e.buffer, CollisionStayEvent{BodyA: pair.bodyA, BodyB: pair.bodyB, Info: pair.info})
		} else {
			e.buffer = append(e.buffer, CollisionEnterEvent{BodyA: pair.bodyA, BodyB: pair.bodyB, Info: pair.info})
		}
	}

	for _, pair := range e.previousOrder {
		if _, ok := e.currentActivePairs[makePairKey(pair.bodyA, pair.bodyB)]; !ok {
			e.buffer = append(e.buffer, CollisionExitEvent{BodyA: pair.bodyA, BodyB: pair.bodyB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	e.previousOrder, e.currentOrder = e.currentOrder, e.previousOrder[:0]
	clear(e.currentActivePairs)
}

// forget drops a removed body from the tracked pairs, without emitting an exit
func (e *Events) forget(body *actor.RigidBody) {
	n := 0
	for _, pair := range e.previousOrder {
		if pair.bodyA == body || pair.bodyB == body {
			continue
		}
		e.previousOrder[n] = pair
		n++
	}
	e.previousOrder = e.previousOrder[:n]

	clear(e.previousActivePairs)
	for i, pair := range e.previousOrder {
		e.previousActivePairs[makePairKey(pair.bodyA, pair.bodyB)] = i
	}
}

// reset drops every tracked pair and pending event, listeners are kept
func (e *Events) reset() {
	listeners := e.listeners
	*e = NewEvents()
	if listeners != nil {
		e.listeners = listeners
	}
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	if e.currentActivePairs == nil {
		*e = NewEvents()
	}
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
