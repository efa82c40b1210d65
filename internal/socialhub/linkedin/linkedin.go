package linkedin

import (
	"fmt"
	"os"
	"strings"

	"github.com/blacktop/socialhub/internal/logutil"
	"github.com/blacktop/socialhub/internal/socialhub"
	"github.com/google/uuid"
)

const (
	envEmail = "SOCIALHUB_LINKEDIN_EMAIL"
	envToken = "SOCIALHUB_LINKEDIN_TOKEN"

	providerName = "linkedin"

	defaultEmail = "user@email.com"
	defaultToken = "linkedin_token"

	// PostTitle is the fixed title attached to every shared update.
	PostTitle = "Professional Post"

	// IDPrefix marks identifiers generated for published updates.
	IDPrefix = "LinkedInPost:"
)

// Config contains the simulated member credentials.
type Config struct {
	Email string
	Token string
}

// Credentials is the LinkedIn-native authentication payload.
type Credentials struct {
	Email string
	Token string
}

// PostData is the LinkedIn-native share payload.
type PostData struct {
	Title string
	Body  string
}

// API is the call shape of the LinkedIn share endpoint. It reports success as a flag.
type API interface {
	ShareUpdate(creds Credentials, post PostData) (bool, error)
}

// StubAPI simulates the LinkedIn API in-process.
type StubAPI struct{}

// ShareUpdate logs the request and always reports success.
func (StubAPI) ShareUpdate(creds Credentials, post PostData) (bool, error) {
	logutil.Debug("authenticating", "api", providerName, "user", creds.Email)
	logutil.Info("sharing update", "api", providerName, "title", post.Title)
	return true, nil
}

// Adapter implements the Publisher interface for LinkedIn.
type Adapter struct {
	api API
	cfg Config
}

// New constructs a LinkedIn publisher backed by the in-process stub.
func New() *Adapter {
	return NewWithAPI(loadConfigFromEnv(), StubAPI{})
}

// NewWithAPI constructs a LinkedIn publisher around an arbitrary API implementation.
func NewWithAPI(cfg Config, api API) *Adapter {
	return &Adapter{api: api, cfg: cfg}
}

// Name identifies the provider.
func (a *Adapter) Name() string { return providerName }

// Publish shares the content text as the body of a professional update.
func (a *Adapter) Publish(content socialhub.Content) socialhub.Result[string] {
	creds := Credentials{Email: a.cfg.Email, Token: a.cfg.Token}
	post := PostData{Title: PostTitle, Body: content.Text()}

	ok, err := a.api.ShareUpdate(creds, post)
	if err != nil {
		return socialhub.Failure[string](fmt.Sprintf("error publishing to %s: %v", providerName, err))
	}
	if !ok {
		return socialhub.Failure[string]("linkedin API reported a failed publication")
	}
	return socialhub.Success(IDPrefix+uuid.NewString(), "published to linkedin")
}

// Authenticate is simulated and always succeeds.
func (a *Adapter) Authenticate(username, password string) socialhub.Result[bool] {
	logutil.Debug("simulated authentication", "provider", providerName)
	return socialhub.Success(true, "authenticated with linkedin successfully")
}

func loadConfigFromEnv() Config {
	cfg := Config{
		Email: strings.TrimSpace(os.Getenv(envEmail)),
		Token: strings.TrimSpace(os.Getenv(envToken)),
	}
	if cfg.Email == "" {
		cfg.Email = defaultEmail
	}
	if cfg.Token == "" {
		cfg.Token = defaultToken
	}
	return cfg
}
