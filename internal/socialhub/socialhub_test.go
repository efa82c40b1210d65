package socialhub

import (
	"errors"
	"strings"
	"testing"
)

func TestNewContentCopiesMedia(t *testing.T) {
	media := []byte{1, 2, 3}
	c := NewContent("hello", media)
	media[0] = 9

	if got := c.Media(); got[0] != 1 {
		t.Fatalf("content media changed with caller slice: %v", got)
	}

	out := c.Media()
	out[1] = 9
	if got := c.Media(); got[1] != 2 {
		t.Fatalf("content media changed through accessor: %v", got)
	}
}

func TestContentHasMedia(t *testing.T) {
	tests := []struct {
		name  string
		media []byte
		want  bool
	}{
		{name: "nil", media: nil, want: false},
		{name: "empty", media: []byte{}, want: false},
		{name: "bytes", media: []byte{1}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContent("text", tt.media)
			if got := c.HasMedia(); got != tt.want {
				t.Fatalf("HasMedia() = %v, want %v", got, tt.want)
			}
			if !tt.want && c.Media() != nil {
				t.Fatalf("Media() = %v, want nil", c.Media())
			}
		})
	}
}

func TestResultSuccess(t *testing.T) {
	r := Success("TweetID:1", "ok")
	if !r.OK() {
		t.Fatalf("expected success")
	}
	payload, ok := r.Payload()
	if !ok || payload != "TweetID:1" {
		t.Fatalf("Payload() = %q, %v", payload, ok)
	}
	if want := "Result{success=true, message='ok', payload=TweetID:1}"; r.String() != want {
		t.Fatalf("String() = %q, want %q", r.String(), want)
	}
}

func TestResultFailureHasNoPayload(t *testing.T) {
	r := Failure[string]("boom")
	if r.OK() {
		t.Fatalf("expected failure")
	}
	if payload, ok := r.Payload(); ok || payload != "" {
		t.Fatalf("failure carried payload %q", payload)
	}
	if r.Message() != "boom" {
		t.Fatalf("Message() = %q", r.Message())
	}
	if !strings.Contains(r.String(), "payload=<nil>") {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in   string
		want Platform
	}{
		{in: "twitter", want: Twitter},
		{in: " LinkedIn ", want: LinkedIn},
		{in: "INSTAGRAM", want: Instagram},
	}
	for _, tt := range tests {
		got, err := ParsePlatform(tt.in)
		if err != nil {
			t.Fatalf("ParsePlatform(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParsePlatform(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePlatformUnknown(t *testing.T) {
	_, err := ParsePlatform("myspace")
	if !errors.Is(err, ErrUnknownPlatform) {
		t.Fatalf("expected ErrUnknownPlatform, got %v", err)
	}
	var upErr UnknownPlatformError
	if !errors.As(err, &upErr) || upErr.Value != "myspace" {
		t.Fatalf("expected UnknownPlatformError for myspace, got %v", err)
	}
}

func TestPlatformString(t *testing.T) {
	if Twitter.String() != "twitter" {
		t.Fatalf("Twitter.String() = %q", Twitter.String())
	}
	if Platform(42).Valid() {
		t.Fatalf("Platform(42) should be invalid")
	}
	if got := Platform(42).String(); got != "platform(42)" {
		t.Fatalf("Platform(42).String() = %q", got)
	}
	if len(Platforms()) != 3 {
		t.Fatalf("expected three platforms, got %d", len(Platforms()))
	}
}

func TestUpstreamErrorUnwrap(t *testing.T) {
	base := errors.New("rate limited")
	err := UpstreamError{Provider: "twitter", Err: base}
	if !errors.Is(err, base) {
		t.Fatalf("expected upstream error to unwrap to base")
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("Error() = %q", err.Error())
	}
}
