package backend

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFaultLineTruncatesLongPreview(t *testing.T) {
	got := FaultLine("this message is definitely too long to show in full")
	want := "Failed to send message: this message is..."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFaultLineKeepsShortPreview(t *testing.T) {
	got := FaultLine("hello")
	want := "Failed to send message: hello"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Register("matrix", func(auth map[string]any, log *logrus.Logger) (Backend, error) { return nil, nil })
	if _, ok := r.Lookup("matrix"); !ok {
		t.Fatal("expected matrix to be registered")
	}
	if _, ok := r.Lookup("slack"); ok {
		t.Fatal("did not expect slack to be registered")
	}
}
