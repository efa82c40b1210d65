package socialhub

// Content is the platform-neutral payload handed to every Publisher.
// It is immutable once built and safe to share between goroutines.
type Content struct {
	text  string
	media []byte
}

// NewContent builds a Content value. The media slice is copied.
func NewContent(text string, media []byte) Content {
	c := Content{text: text}
	if len(media) > 0 {
		c.media = append([]byte(nil), media...)
	}
	return c
}

// Text returns the post text.
func (c Content) Text() string { return c.text }

// Media returns a copy of the attached media, or nil when none is attached.
func (c Content) Media() []byte {
	if len(c.media) == 0 {
		return nil
	}
	return append([]byte(nil), c.media...)
}

// HasMedia reports whether non-empty media is attached.
func (c Content) HasMedia() bool { return len(c.media) > 0 }

// Publisher abstracts a social network that can publish content.
// Publish never returns an error: failures are reported through the Result.
type Publisher interface {
	Name() string
	Publish(content Content) Result[string]
	Authenticate(username, password string) Result[bool]
}
