package instagram

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blacktop/socialhub/internal/logutil"
	"github.com/blacktop/socialhub/internal/socialhub"
	"github.com/google/uuid"
)

const (
	envAuthToken = "SOCIALHUB_INSTAGRAM_AUTH_TOKEN"

	providerName = "instagram"

	defaultAuthToken = "instagram_auth_token_xyz"

	// IDPrefix marks identifiers generated for published photos.
	IDPrefix = "InstaPost:"
)

// ErrMissingMedia is reported by the photo endpoint when no media is supplied.
var ErrMissingMedia = errors.New("photo publication requires a media file")

// Config holds the simulated session token.
type Config struct {
	AuthToken string
}

// API is the call shape of the Instagram photo endpoint.
type API interface {
	PublishPhoto(authToken string, photo []byte, caption string) error
}

// StubAPI simulates the Instagram API in-process.
type StubAPI struct{}

// PublishPhoto logs the request and rejects empty media.
func (StubAPI) PublishPhoto(authToken string, photo []byte, caption string) error {
	logutil.Debug("validating auth token", "api", providerName)
	if len(photo) == 0 {
		return socialhub.UpstreamError{Provider: providerName, Err: ErrMissingMedia}
	}
	logutil.Info("publishing photo", "api", providerName, "caption", caption, "bytes", len(photo))
	return nil
}

// Adapter implements the Publisher interface for Instagram.
type Adapter struct {
	api API
	cfg Config
}

// New constructs an Instagram publisher backed by the in-process stub.
func New() *Adapter {
	return NewWithAPI(loadConfigFromEnv(), StubAPI{})
}

// NewWithAPI constructs an Instagram publisher around an arbitrary API implementation.
func NewWithAPI(cfg Config, api API) *Adapter {
	return &Adapter{api: api, cfg: cfg}
}

// Name identifies the provider.
func (a *Adapter) Name() string { return providerName }

// Publish posts the media with the content text as its caption.
// Content without media is rejected before the API is called.
func (a *Adapter) Publish(content socialhub.Content) socialhub.Result[string] {
	if !content.HasMedia() {
		err := socialhub.ValidationError{Provider: providerName, Reason: "instagram requires an image or video to publish"}
		return socialhub.Failure[string](err.Error())
	}

	if err := a.api.PublishPhoto(a.cfg.AuthToken, content.Media(), content.Text()); err != nil {
		return socialhub.Failure[string](fmt.Sprintf("error publishing to %s: %v", providerName, err))
	}
	return socialhub.Success(IDPrefix+uuid.NewString(), "photo published to instagram")
}

// Authenticate is simulated and always succeeds.
func (a *Adapter) Authenticate(username, password string) socialhub.Result[bool] {
	logutil.Debug("simulated authentication", "provider", providerName)
	return socialhub.Success(true, "authenticated with instagram successfully")
}

func loadConfigFromEnv() Config {
	cfg := Config{AuthToken: strings.TrimSpace(os.Getenv(envAuthToken))}
	if cfg.AuthToken == "" {
		cfg.AuthToken = defaultAuthToken
	}
	return cfg
}
