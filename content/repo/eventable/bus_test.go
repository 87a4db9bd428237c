package eventable

import (
	"context"
	"io/ioutil"
	"testing"
	"time"

	"github.com/urandom/feedkeeper/config"
	"github.com/urandom/feedkeeper/content"
	"github.com/urandom/feedkeeper/log"
)

var logger log.Log

func init() {
	cfg := config.Log{}
	cfg.Converted.Writer = ioutil.Discard

	logger = log.WithStd(cfg)
}

type event1data struct {
	data int
}

func (e event1data) FeedID() content.FeedID {
	return "feed1"
}

type event2data struct {
	data string
}

func (e event2data) FeedID() content.FeedID {
	return "feed2"
}

func Test_bus_Dispatch(t *testing.T) {
	type args struct {
		name string
		data FeedData
	}
	tests := []struct {
		name      string
		events    []args
		listeners int
	}{
		{"single event", []args{args{"event1", event1data{42}}}, 1},
		{"multiple event", []args{
			args{"event1", event1data{42}},
			args{"event2", event2data{"event2"}},
		}, 1},
		{"single event, multi listeners", []args{args{"event1", event1data{42}}}, 3},
		{"multiple event, multi listeners", []args{
			args{"event1", event1data{42}},
			args{"event2", event2data{"event2"}},
		}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			b := newBus(ctx, 10, logger)

			streams := make([]Stream, tt.listeners)
			for i := range streams {
				streams[i] = b.Listener()
			}

			for _, e := range tt.events {
				b.Dispatch(e.name, e.data)
			}

			for _, l := range streams {
				for i := range tt.events {
					select {
					case e := <-l:
						if e.Name != tt.events[i].name || e.Data != tt.events[i].data {
							t.Errorf("Test_bus_Dispatch(), expected %#v, got %#v", tt.events[i], e)
						}
					case <-time.After(time.Second):
						t.Errorf("Test_bus_Dispatch(), timed out waiting for event %d", i)
						return
					}
				}
			}
		})
	}
}

func Test_bus_DispatchNonBlocking(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := newBus(ctx, 2, logger)

	l := b.Listener()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			b.Dispatch("event1", event1data{i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch() blocked on a full listener")
	}

	if len(l) != 2 {
		t.Errorf("listener buffered = %d events, want 2", len(l))
	}
}

func Test_bus_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	b := newBus(ctx, 2, logger)

	l := b.Listener()
	cancel()

	select {
	case _, ok := <-l:
		if ok {
			t.Errorf("listener received an event after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("listener not closed after cancellation")
	}

	done := make(chan struct{})
	go func() {
		b.Dispatch("event1", event1data{1})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Dispatch() blocked after cancellation")
	}

	if _, ok := <-b.Listener(); ok {
		t.Errorf("Listener() after cancellation returned an open stream")
	}
}
