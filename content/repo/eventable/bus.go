package eventable

import (
	"context"

	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
)

type Event struct {
	Name string
	Data interface{}
}

type FeedData interface {
	FeedID() content.FeedID
}

type Stream chan Event

type busCall func(*busPayload)

type busPayload struct {
	listeners []Stream
}

type bus struct {
	ops    chan busCall
	ctx    context.Context
	buffer int
	log    log.Log
}

func newBus(ctx context.Context, buffer int, log log.Log) bus {
	if buffer <= 0 {
		buffer = 10
	}

	b := bus{
		ops:    make(chan busCall),
		ctx:    ctx,
		buffer: buffer,
		log:    log,
	}

	go b.loop()

	return b
}

// Dispatch sends the event to every listener. A listener with a full buffer
// misses the event.
func (b bus) Dispatch(name string, data interface{}) {
	b.do(func(p *busPayload) {
		event := Event{name, data}
		for i := range p.listeners {
			select {
			case p.listeners[i] <- event:
			default:
				b.log.Printf("Dropping event %s for listener %d: buffer full", name, i)
			}
		}
	})
}

// Listener returns a new stream of events. It is closed when the bus context
// is done.
func (b bus) Listener() Stream {
	ret := make(Stream, b.buffer)

	if !b.do(func(p *busPayload) {
		p.listeners = append(p.listeners, ret)
	}) {
		close(ret)
	}

	return ret
}

func (b bus) do(op busCall) bool {
	select {
	case b.ops <- op:
		return true
	case <-b.ctx.Done():
		return false
	}
}

func (b bus) loop() {
	payload := busPayload{
		[]Stream{},
	}

	for {
		select {
		case op := <-b.ops:
			op(&payload)
		case <-b.ctx.Done():
			for i := range payload.listeners {
				close(payload.listeners[i])
			}
			return
		}
	}
}
