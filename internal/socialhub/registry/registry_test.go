package registry

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/blacktop/socialhub/internal/socialhub"
)

type fakePublisher struct{ id int64 }

func (f *fakePublisher) Name() string { return "fake" }

func (f *fakePublisher) Publish(socialhub.Content) socialhub.Result[string] {
	return socialhub.Success("fake", "ok")
}

func (f *fakePublisher) Authenticate(string, string) socialhub.Result[bool] {
	return socialhub.Success(true, "ok")
}

func countingConstructors(counter *atomic.Int64) map[socialhub.Platform]Constructor {
	constructors := map[socialhub.Platform]Constructor{}
	for _, p := range socialhub.Platforms() {
		constructors[p] = func() socialhub.Publisher {
			return &fakePublisher{id: counter.Add(1)}
		}
	}
	return constructors
}

func TestDefaultReturnsSameInstance(t *testing.T) {
	for _, p := range socialhub.Platforms() {
		first, err := GetAdapter(p)
		if err != nil {
			t.Fatalf("GetAdapter(%s): %v", p, err)
		}
		second, err := GetAdapter(p)
		if err != nil {
			t.Fatalf("GetAdapter(%s): %v", p, err)
		}
		if first != second {
			t.Fatalf("%s: expected identical adapters", p)
		}
		if first.Name() != p.String() {
			t.Fatalf("adapter name %q does not match platform %s", first.Name(), p)
		}
	}
}

func TestConcurrentFirstAccessConstructsOnce(t *testing.T) {
	var constructed atomic.Int64
	reg := New(countingConstructors(&constructed))

	const workers = 64
	results := make([]socialhub.Publisher, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			adapter, err := reg.Get(socialhub.Instagram)
			if err != nil {
				t.Errorf("Get: %v", err)
				return
			}
			results[i] = adapter
		}(i)
	}
	close(start)
	wg.Wait()

	if got := constructed.Load(); got != 1 {
		t.Fatalf("constructed %d adapters, want 1", got)
	}
	for i, adapter := range results {
		if adapter != results[0] {
			t.Fatalf("worker %d received a different instance", i)
		}
	}
}

func TestOneInstancePerPlatform(t *testing.T) {
	var constructed atomic.Int64
	reg := New(countingConstructors(&constructed))

	seen := map[socialhub.Publisher]socialhub.Platform{}
	for _, p := range socialhub.Platforms() {
		adapter, err := reg.Get(p)
		if err != nil {
			t.Fatalf("Get(%s): %v", p, err)
		}
		if other, ok := seen[adapter]; ok {
			t.Fatalf("%s shares an adapter with %s", p, other)
		}
		seen[adapter] = p
	}
	if got := constructed.Load(); got != 3 {
		t.Fatalf("constructed %d adapters, want 3", got)
	}
}

func TestUnknownPlatform(t *testing.T) {
	reg := New(Constructors())
	_, err := reg.Get(socialhub.Platform(42))
	if !errors.Is(err, socialhub.ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform, got %v", err)
	}

	partial := New(map[socialhub.Platform]Constructor{
		socialhub.Twitter: func() socialhub.Publisher { return &fakePublisher{} },
	})
	if _, err := partial.Get(socialhub.LinkedIn); !errors.Is(err, socialhub.ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform for unregistered platform, got %v", err)
	}
}

func TestReset(t *testing.T) {
	var constructed atomic.Int64
	reg := New(countingConstructors(&constructed))

	first, _ := reg.Get(socialhub.Twitter)
	reg.Reset()
	second, _ := reg.Get(socialhub.Twitter)

	if first == second {
		t.Fatalf("expected a new instance after Reset")
	}
	if got := constructed.Load(); got != 2 {
		t.Fatalf("constructed %d adapters, want 2", got)
	}
}
