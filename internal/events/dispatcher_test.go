package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var calls int
	dispatcher.Subscribe(EventPostCreated, func(context.Context, Event) error {
		calls++
		return nil
	})
	dispatcher.Subscribe(EventPostCreated, func(context.Context, Event) error {
		calls++
		return nil
	})
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		t.Fatal("handler for other event type invoked")
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventPostCreated}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 handler calls, got %d", calls)
	}
}

func TestPublishContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventCommentAdded, func(context.Context, Event) error {
		called = true
		return nil
	})

	if err := dispatcher.Publish(context.Background(), Event{Type: EventCommentAdded}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !called {
		t.Fatal("second handler not invoked after first failed")
	}
}

func TestPublishWithoutSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	if err := dispatcher.Publish(context.Background(), Event{Type: EventUserPromoted}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
}
