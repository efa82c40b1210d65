package twitter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/blacktop/socialhub/internal/logutil"
	"github.com/blacktop/socialhub/internal/socialhub"
	"github.com/google/uuid"
	"github.com/michimani/gotwi"
	managetweettypes "github.com/michimani/gotwi/tweet/managetweet/types"
)

const (
	envAPIKey = "SOCIALHUB_TWITTER_API_KEY"
	envUser   = "SOCIALHUB_TWITTER_USER"

	providerName = "twitter"

	defaultAPIKey = "twitter_api_key_123"
	defaultUser   = "currentUser"

	// IDPrefix marks identifiers returned by the simulated X API.
	IDPrefix = "TweetID:"
)

// Config captures the simulated credentials sent with every tweet.
type Config struct {
	APIKey string
	User   string
}

// API is the call shape of the X create-tweet endpoint.
type API interface {
	PostTweet(apiKey, user string, in *managetweettypes.CreateInput) (string, error)
}

// StubAPI simulates the X API in-process.
type StubAPI struct{}

// PostTweet logs the request and returns a synthetic tweet identifier.
func (StubAPI) PostTweet(apiKey, user string, in *managetweettypes.CreateInput) (string, error) {
	logutil.Debug("authenticating", "api", providerName, "key", apiKey)
	if in == nil || in.Text == nil {
		return "", socialhub.UpstreamError{Provider: providerName, Err: errors.New("tweet text is required")}
	}
	logutil.Info("publishing tweet", "api", providerName, "user", "@"+user, "text", *in.Text)
	return IDPrefix + uuid.NewString(), nil
}

// Adapter implements the Publisher interface for X (Twitter).
type Adapter struct {
	api API
	cfg Config
}

// New constructs a Twitter publisher backed by the in-process stub.
func New() *Adapter {
	return NewWithAPI(loadConfigFromEnv(), StubAPI{})
}

// NewWithAPI constructs a Twitter publisher around an arbitrary API implementation.
func NewWithAPI(cfg Config, api API) *Adapter {
	return &Adapter{api: api, cfg: cfg}
}

// Name returns the provider identifier.
func (a *Adapter) Name() string { return providerName }

// Publish translates the content into a create-tweet request.
func (a *Adapter) Publish(content socialhub.Content) socialhub.Result[string] {
	input := &managetweettypes.CreateInput{
		Text: gotwi.String(content.Text()),
	}

	id, err := a.api.PostTweet(a.cfg.APIKey, a.cfg.User, input)
	if err != nil {
		return socialhub.Failure[string](fmt.Sprintf("error publishing to %s: %v", providerName, err))
	}
	return socialhub.Success(id, "tweet published successfully")
}

// Authenticate is simulated and always succeeds.
func (a *Adapter) Authenticate(username, password string) socialhub.Result[bool] {
	logutil.Debug("simulated authentication", "provider", providerName)
	return socialhub.Success(true, "authenticated with twitter successfully")
}

func loadConfigFromEnv() Config {
	cfg := Config{
		APIKey: strings.TrimSpace(os.Getenv(envAPIKey)),
		User:   strings.TrimSpace(os.Getenv(envUser)),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = defaultAPIKey
	}
	if cfg.User == "" {
		cfg.User = defaultUser
	}
	return cfg
}
