package pending_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"examprep-backend/internal/model"
	"examprep-backend/internal/pending"
)

func sampleEvents(n int) []model.EventDescriptor {
	events := make([]model.EventDescriptor, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, model.EventDescriptor{
			Title:     fmt.Sprintf("Session %d", i+1),
			Date:      "2026-05-01",
			StartTime: "09:00",
			EndTime:   "10:00",
		})
	}
	return events
}

func TestPutThenTakeOnce(t *testing.T) {
	store := pending.New(pending.Options{})

	events := sampleEvents(3)
	token, err := store.Put(events)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}

	got, ok := store.TakeOnce(token)
	if !ok {
		t.Fatal("first TakeOnce returned absent")
	}
	if len(got) != 3 || got[0].Title != "Session 1" || got[2].Title != "Session 3" {
		t.Errorf("events mismatch: %+v", got)
	}

	if _, ok := store.TakeOnce(token); ok {
		t.Error("second TakeOnce must return absent")
	}
}

func TestTakeOnceUnknownToken(t *testing.T) {
	store := pending.New(pending.Options{})

	if _, ok := store.TakeOnce("never-issued"); ok {
		t.Error("unknown token must return absent")
	}
}

func TestPutEmptyEvents(t *testing.T) {
	store := pending.New(pending.Options{})

	if _, err := store.Put(nil); err != pending.ErrNoEvents {
		t.Errorf("err = %v, want ErrNoEvents", err)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	store := pending.New(pending.Options{
		TTL: 15 * time.Minute,
		Now: func() time.Time { return now },
	})

	token, err := store.Put(sampleEvents(1))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Just inside the TTL.
	now = now.Add(14 * time.Minute)
	if _, ok := store.TakeOnce(token); !ok {
		t.Fatal("entry expired early")
	}

	token, err = store.Put(sampleEvents(1))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	// Past the TTL: absent even though never consumed.
	now = now.Add(16 * time.Minute)
	if _, ok := store.TakeOnce(token); ok {
		t.Error("expired entry must return absent")
	}
}

func TestTokensAreUnique(t *testing.T) {
	store := pending.New(pending.Options{})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := store.Put(sampleEvents(1))
		if err != nil {
			t.Fatalf("Put: %v", err)
		}
		if seen[token] {
			t.Fatalf("token reused: %s", token)
		}
		seen[token] = true
	}
}

func TestInjectedTokenGenerator(t *testing.T) {
	store := pending.New(pending.Options{
		NewToken: func() string { return "fixed-token" },
	})

	token, err := store.Put(sampleEvents(1))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if token != "fixed-token" {
		t.Errorf("token = %q", token)
	}
}

func TestConcurrentTakeOnce(t *testing.T) {
	store := pending.New(pending.Options{})

	token, err := store.Put(sampleEvents(2))
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	const callers = 16
	var wg sync.WaitGroup
	wins := make(chan bool, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := store.TakeOnce(token)
			wins <- ok
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for ok := range wins {
		if ok {
			count++
		}
	}
	if count != 1 {
		t.Errorf("exactly one caller must win, got %d", count)
	}
}
