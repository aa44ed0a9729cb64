package harvest

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/samvad-hq/dogceo-go/pkg/publishers"
	"github.com/samvad-hq/dogceo-go/pkg/targets"
)

// fakeSource serves canned URLs per breed ("" for the whole catalog).
type fakeSource struct {
	urls map[string][]string
	err  error
}

func (f *fakeSource) RandomImages(_ context.Context, n int) ([]string, error) {
	return f.pick("", n)
}

func (f *fakeSource) RandomImagesByBreed(_ context.Context, breed string, n int) ([]string, error) {
	return f.pick(breed, n)
}

func (f *fakeSource) RandomImagesBySubBreed(_ context.Context, breed, sub string, n int) ([]string, error) {
	return f.pick(breed+"/"+sub, n)
}

func (f *fakeSource) pick(key string, n int) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	urls := f.urls[key]
	if len(urls) > n {
		urls = urls[:n]
	}
	return urls, nil
}

// fakePublisher records published events and can reject some URLs.
type fakePublisher struct {
	mu      sync.Mutex
	events  []publishers.Event
	failURL string
}

func (f *fakePublisher) Publish(_ context.Context, evt publishers.Event) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if evt.Image.URL == f.failURL {
		return 0, errors.New("boom")
	}
	f.events = append(f.events, evt)
	return 1, nil
}

// fakeDeduper tracks seen IDs.
type fakeDeduper struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (f *fakeDeduper) SeenImage(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen[id], nil
}

func (f *fakeDeduper) MarkImage(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	f.seen[id] = true
	return nil
}

func TestRunPublishesFreshImagesOnly(t *testing.T) {
	src := &fakeSource{urls: map[string][]string{
		"hound": {"https://images.dog.ceo/a.jpg", "https://images.dog.ceo/b.jpg", "https://images.dog.ceo/a.jpg", " "},
	}}
	pub := &fakePublisher{}
	dedupe := &fakeDeduper{}
	svc := NewService(src, pub, nil, dedupe)
	target := targets.Target{ID: "hounds", Breed: "hound", Count: 4}

	res, err := svc.RunTarget(context.Background(), target)
	if err != nil {
		t.Fatalf("RunTarget: %v", err)
	}
	if res.Fetched != 4 || res.Published != 2 || res.Skipped != 0 {
		t.Fatalf("unexpected first pass %#v", res)
	}
	if pub.events[0].Image.Breed != "hound" || pub.events[0].TargetID != "hounds" {
		t.Fatalf("event not populated from target: %#v", pub.events[0])
	}

	res, err = svc.RunTarget(context.Background(), target)
	if err != nil {
		t.Fatalf("second RunTarget: %v", err)
	}
	if res.Published != 0 || res.Skipped != 2 {
		t.Fatalf("expected images to be skipped on second pass, got %#v", res)
	}
}

func TestRunTargetDoesNotMarkUndeliveredImages(t *testing.T) {
	src := &fakeSource{urls: map[string][]string{"": {"https://images.dog.ceo/bad.jpg"}}}
	pub := &fakePublisher{failURL: "https://images.dog.ceo/bad.jpg"}
	dedupe := &fakeDeduper{}
	svc := NewService(src, pub, nil, dedupe)

	_, err := svc.RunTarget(context.Background(), targets.Target{ID: "any", Count: 1})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected publish error, got %v", err)
	}
	if len(dedupe.seen) != 0 {
		t.Fatalf("undelivered image must not be marked as seen")
	}
}

func TestRunJoinsTargetErrors(t *testing.T) {
	svc := NewService(&fakeSource{err: errors.New("Breed not found")}, &fakePublisher{}, nil, nil)

	err := svc.Run(context.Background(), []targets.Target{
		{ID: "a", Breed: "nope", Count: 1},
		{ID: "b", Breed: "nada", Count: 1},
	})
	if err == nil {
		t.Fatalf("expected joined error")
	}
	if !strings.Contains(err.Error(), "fetch target a") || !strings.Contains(err.Error(), "fetch target b") {
		t.Fatalf("both targets should be reported, got %v", err)
	}
}

func TestRunRejectsEmptyTargets(t *testing.T) {
	svc := NewService(&fakeSource{}, &fakePublisher{}, nil, nil)
	if err := svc.Run(context.Background(), nil); err == nil {
		t.Fatalf("expected error for empty target list")
	}
}

func TestHashURLIsStable(t *testing.T) {
	if hashURL("x") != hashURL("x") || hashURL("x") == hashURL("y") {
		t.Fatalf("hashURL should be deterministic and distinct")
	}
}
