package manager

import (
	"fmt"

	"github.com/blacktop/socialhub/internal/logutil"
	"github.com/blacktop/socialhub/internal/socialhub"
	"github.com/blacktop/socialhub/internal/socialhub/registry"
)

// Manager posts content to a single platform through its cached adapter.
type Manager struct {
	platform  socialhub.Platform
	publisher socialhub.Publisher
}

// New resolves the adapter for p from the default registry.
func New(p socialhub.Platform) (*Manager, error) {
	return NewWithRegistry(registry.Default(), p)
}

// NewWithRegistry resolves the adapter for p from reg.
func NewWithRegistry(reg *registry.Registry, p socialhub.Platform) (*Manager, error) {
	publisher, err := reg.Get(p)
	if err != nil {
		return nil, fmt.Errorf("configure manager: %w", err)
	}
	logutil.Info("manager configured", "platform", p)
	return &Manager{platform: p, publisher: publisher}, nil
}

// Platform returns the target platform.
func (m *Manager) Platform() socialhub.Platform { return m.platform }

// Publisher returns the adapter the manager posts through.
func (m *Manager) Publisher() socialhub.Publisher { return m.publisher }

// PostContent publishes content and logs the outcome.
func (m *Manager) PostContent(content socialhub.Content) socialhub.Result[string] {
	logutil.Info("posting content", "platform", m.platform, "text", content.Text(), "media", content.HasMedia())

	res := m.publisher.Publish(content)
	if res.OK() {
		id, _ := res.Payload()
		logutil.Info("post published", "platform", m.platform, "id", id, "message", res.Message())
	} else {
		logutil.Error("post failed", "platform", m.platform, "message", res.Message())
	}
	return res
}
