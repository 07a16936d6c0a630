package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/halbind/halbind/binding"
	"github.com/halbind/halbind/resource"
)

type fakeFetcher struct {
	mu        sync.Mutex
	resources map[string]resource.FlatResource
	failures  map[string]error
	fetched   []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (resource.FlatResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, url)
	if err, ok := f.failures[url]; ok {
		return nil, err
	}
	flat, ok := f.resources[url]
	if !ok {
		return nil, errors.New("unexpected URL " + url)
	}
	return flat, nil
}

func (f *fakeFetcher) urls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetched...)
}

type recordingInjector struct {
	mu       sync.Mutex
	injected map[string]resource.Value
}

func newRecordingInjector() *recordingInjector {
	return &recordingInjector{injected: map[string]resource.Value{}}
}

func (i *recordingInjector) Inject(key string, value resource.Value, requests *binding.RequestSet) bool {
	if _, ok := requests.Resolve(key); !ok {
		return false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.injected[key] = value
	return true
}

func (i *recordingInjector) value(key string) (resource.Value, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	value, ok := i.injected[key]
	return value, ok
}

func requestSetFor(keys ...string) *binding.RequestSet {
	placeholders := make(map[string][]binding.Target, len(keys))
	for _, key := range keys {
		placeholders[key] = []binding.Target{binding.NewRecorder()}
	}
	return binding.NewRequestSet(placeholders)
}

func TestCrawl(t *testing.T) {
	t.Parallel()

	t.Run("inline_value_is_injected", func(t *testing.T) {
		t.Parallel()

		injector := newRecordingInjector()
		crawl := New(&fakeFetcher{}, injector)
		requests := requestSetFor("name")

		crawl.Crawl(context.Background(), resource.FlatResource{"name": "Acme"}, requests)
		if err := crawl.Wait(); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}

		if value, ok := injector.value("name"); !ok || value != "Acme" {
			t.Fatalf("expected name=Acme injected, got %#v %v", value, ok)
		}
		if !requests.Empty() {
			t.Fatalf("expected empty request set, remaining %v", requests.Remaining())
		}
	})

	t.Run("prefix_request_resolves_inside_sub_resource", func(t *testing.T) {
		t.Parallel()

		injector := newRecordingInjector()
		crawl := New(&fakeFetcher{}, injector)
		requests := requestSetFor("a@b")

		crawl.Crawl(context.Background(), resource.FlatResource{
			"a": map[string]any{"b": "x"},
		}, requests)
		if err := crawl.Wait(); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}

		if value, ok := injector.value("b"); !ok || value != "x" {
			t.Fatalf("expected b=x injected, got %#v %v", value, ok)
		}
	})

	t.Run("link_stub_is_fetched_not_rendered", func(t *testing.T) {
		t.Parallel()

		fetch := &fakeFetcher{resources: map[string]resource.FlatResource{
			"U": {"p": "resolved"},
		}}
		injector := newRecordingInjector()
		crawl := New(fetch, injector)
		requests := requestSetFor("p")

		crawl.Crawl(context.Background(), resource.FlatResource{
			"p": map[string]any{"href": "U"},
		}, requests)
		if err := crawl.Wait(); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}

		if got := fetch.urls(); len(got) != 1 || got[0] != "U" {
			t.Fatalf("expected one fetch of U, got %v", got)
		}
		if value, ok := injector.value("p"); !ok || value != "resolved" {
			t.Fatalf("expected p resolved via fetched resource, got %#v %v", value, ok)
		}
	})

	t.Run("multi_hop_stub_traversal", func(t *testing.T) {
		t.Parallel()

		fetch := &fakeFetcher{resources: map[string]resource.FlatResource{
			"U1": {"p": map[string]any{"href": "U2"}},
			"U2": {"p": "deep"},
		}}
		injector := newRecordingInjector()
		crawl := New(fetch, injector)
		requests := requestSetFor("p")

		crawl.Crawl(context.Background(), resource.FlatResource{
			"p": map[string]any{"href": "U1"},
		}, requests)
		if err := crawl.Wait(); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}

		if value, ok := injector.value("p"); !ok || value != "deep" {
			t.Fatalf("expected deep value, got %#v %v", value, ok)
		}
	})

	t.Run("own_field_wins_over_prefix_descent", func(t *testing.T) {
		t.Parallel()

		injector := newRecordingInjector()
		crawl := New(&fakeFetcher{}, injector)
		requests := requestSetFor("a@b")

		crawl.Crawl(context.Background(), resource.FlatResource{
			"a@b": "literal",
			"a":   map[string]any{"b": "nested"},
		}, requests)
		if err := crawl.Wait(); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}

		if value, ok := injector.value("a@b"); !ok || value != "literal" {
			t.Fatalf("expected literal own-field value, got %#v %v", value, ok)
		}
	})

	t.Run("missing_field_stays_unresolved", func(t *testing.T) {
		t.Parallel()

		injector := newRecordingInjector()
		crawl := New(&fakeFetcher{}, injector)
		requests := requestSetFor("ghost")

		crawl.Crawl(context.Background(), resource.FlatResource{"name": "Acme"}, requests)
		if err := crawl.Wait(); err != nil {
			t.Fatalf("Wait returned error: %v", err)
		}

		if got := requests.Remaining(); len(got) != 1 || got[0] != "ghost" {
			t.Fatalf("expected ghost unresolved, got %v", got)
		}
	})

	t.Run("failed_branch_does_not_stop_siblings", func(t *testing.T) {
		t.Parallel()

		failure := errors.New("boom")
		fetch := &fakeFetcher{
			resources: map[string]resource.FlatResource{
				"OK": {"good": "value"},
			},
			failures: map[string]error{"BAD": failure},
		}
		injector := newRecordingInjector()
		crawl := New(fetch, injector)
		requests := requestSetFor("good", "bad")

		crawl.Crawl(context.Background(), resource.FlatResource{
			"good": map[string]any{"href": "OK"},
			"bad":  map[string]any{"href": "BAD"},
		}, requests)

		if err := crawl.Wait(); !errors.Is(err, failure) {
			t.Fatalf("expected branch failure surfaced, got %v", err)
		}
		if value, ok := injector.value("good"); !ok || value != "value" {
			t.Fatalf("expected sibling to resolve, got %#v %v", value, ok)
		}
		if got := requests.Remaining(); len(got) != 1 || got[0] != "bad" {
			t.Fatalf("expected bad unresolved, got %v", got)
		}
	})
}
