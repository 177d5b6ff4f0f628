package util

import (
	"context"
	"errors"
	"testing"

	"github.com/daralshefa/chatbot/backend/pkg/notify"
)

type fakeNotifier struct {
	result     notify.DispatchResult
	dispatched []notify.Event
}

func (f *fakeNotifier) Dispatch(ctx context.Context, event notify.Event) notify.DispatchResult {
	f.dispatched = append(f.dispatched, event)
	return f.result
}

type fakeResolver struct {
	userID int64
	err    error
	calls  []string
}

func (f *fakeResolver) ResolveUser(ctx context.Context, platformID string) (int64, error) {
	f.calls = append(f.calls, platformID)
	return f.userID, f.err
}

type fakePublisher struct {
	err       error
	published []notify.Event
}

func (f *fakePublisher) PublishEvent(ctx context.Context, event notify.Event) error {
	f.published = append(f.published, event)
	return f.err
}

func testEvent() notify.Event {
	return notify.Event{
		Kind:      notify.KindAppointment,
		Recipient: "clinic@example.com",
		Fields:    map[string]string{"name": "Sara"},
	}
}

func TestRecordEventPersistsDespiteChannelFailure(t *testing.T) {
	notifier := &fakeNotifier{result: notify.DispatchResult{EmailOK: false, SheetOK: true}}
	resolver := &fakeResolver{userID: 42}

	var persistedUserID int64
	err := RecordEvent(context.Background(), RecordEventParams{
		Notifier:   notifier,
		Resolver:   resolver,
		Event:      testEvent(),
		PlatformID: "web-abc",
		Persist: func(ctx context.Context, userID int64) error {
			persistedUserID = userID
			return nil
		},
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}

	if persistedUserID != 42 {
		t.Fatalf("persisted user id = %d, want 42", persistedUserID)
	}
	if len(notifier.dispatched) != 1 {
		t.Fatalf("dispatched %d events, want 1", len(notifier.dispatched))
	}
	if len(resolver.calls) != 1 || resolver.calls[0] != "web-abc" {
		t.Fatalf("resolver calls = %v", resolver.calls)
	}
}

func TestRecordEventResolverFailureStopsPersist(t *testing.T) {
	notifier := &fakeNotifier{result: notify.DispatchResult{EmailOK: true, SheetOK: true}}
	resolver := &fakeResolver{err: errors.New("db down")}

	persisted := false
	err := RecordEvent(context.Background(), RecordEventParams{
		Notifier:   notifier,
		Resolver:   resolver,
		Event:      testEvent(),
		PlatformID: "web-abc",
		Persist: func(ctx context.Context, userID int64) error {
			persisted = true
			return nil
		},
	})
	if err == nil {
		t.Fatal("expected an error when identity resolution fails")
	}
	if persisted {
		t.Fatal("persist ran despite a failed identity resolution")
	}
	// Notifications are intentionally dispatched before persistence.
	if len(notifier.dispatched) != 1 {
		t.Fatalf("dispatched %d events, want 1", len(notifier.dispatched))
	}
}

func TestRecordEventPersistFailureSurfaces(t *testing.T) {
	notifier := &fakeNotifier{result: notify.DispatchResult{EmailOK: true, SheetOK: true}}
	resolver := &fakeResolver{userID: 7}

	wantErr := errors.New("insert failed")
	err := RecordEvent(context.Background(), RecordEventParams{
		Notifier:   notifier,
		Resolver:   resolver,
		Event:      testEvent(),
		PlatformID: "web-abc",
		Persist: func(ctx context.Context, userID int64) error {
			return wantErr
		},
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("RecordEvent err = %v, want wrapped %v", err, wantErr)
	}
}

func TestRecordEventPublishesAfterPersist(t *testing.T) {
	notifier := &fakeNotifier{result: notify.DispatchResult{EmailOK: true, SheetOK: true}}
	resolver := &fakeResolver{userID: 7}
	publisher := &fakePublisher{}

	err := RecordEvent(context.Background(), RecordEventParams{
		Notifier:   notifier,
		Resolver:   resolver,
		Publisher:  publisher,
		Event:      testEvent(),
		PlatformID: "web-abc",
		Persist: func(ctx context.Context, userID int64) error {
			return nil
		},
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("published %d events, want 1", len(publisher.published))
	}
}

func TestRecordEventPublisherFailureIsBestEffort(t *testing.T) {
	notifier := &fakeNotifier{result: notify.DispatchResult{EmailOK: true, SheetOK: true}}
	resolver := &fakeResolver{userID: 7}
	publisher := &fakePublisher{err: errors.New("broker down")}

	err := RecordEvent(context.Background(), RecordEventParams{
		Notifier:   notifier,
		Resolver:   resolver,
		Publisher:  publisher,
		Event:      testEvent(),
		PlatformID: "web-abc",
		Persist: func(ctx context.Context, userID int64) error {
			return nil
		},
	})
	if err != nil {
		t.Fatalf("RecordEvent err = %v, want nil for a best-effort publish failure", err)
	}
}

func TestRecordEventWithoutPublisher(t *testing.T) {
	notifier := &fakeNotifier{result: notify.DispatchResult{EmailOK: true, SheetOK: true}}
	resolver := &fakeResolver{userID: 7}

	err := RecordEvent(context.Background(), RecordEventParams{
		Notifier:   notifier,
		Resolver:   resolver,
		Event:      testEvent(),
		PlatformID: "web-abc",
		Persist: func(ctx context.Context, userID int64) error {
			return nil
		},
	})
	if err != nil {
		t.Fatalf("RecordEvent: %v", err)
	}
}
