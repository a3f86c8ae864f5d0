package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"go.uber.org/zap"
)

const resendCooldownSeconds = 60

type AuthMode string

const (
	ModeLogin    AuthMode = "login"
	ModeRegister AuthMode = "register"
)

type AuthState string

const (
	StateCredentials  AuthState = "credentials_entry"
	StateVerification AuthState = "verification_pending"
)

type AuthOutcome string

const (
	OutcomeAuthenticated AuthOutcome = "authenticated"
	OutcomePending2FA    AuthOutcome = "pending_2fa"
	OutcomeFailed        AuthOutcome = "failed"
)

// AuthFlow is one user's in-progress sign-in or registration. Credentials
// live here only while the flow is open; the token ends up in the store and
// the flow is discarded.
type AuthFlow struct {
	mu       sync.Mutex
	mode     AuthMode
	state    AuthState
	email    string
	password string
	errMsg   string
	cooldown int
	stop     chan struct{}
}

func NewAuthFlow() *AuthFlow {
	return &AuthFlow{mode: ModeLogin, state: StateCredentials}
}

func (f *AuthFlow) Mode() AuthMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mode
}

func (f *AuthFlow) State() AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *AuthFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *AuthFlow) SetCredentials(email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = email
	f.password = password
}

func (f *AuthFlow) credentials() models.Credentials {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Credentials{Email: f.email, Password: f.password}
}

// ToggleMode flips between login and register, clearing credentials and any
// error.
func (f *AuthFlow) ToggleMode() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.mode == ModeLogin {
		f.mode = ModeRegister
	} else {
		f.mode = ModeLogin
	}
	f.email = ""
	f.password = ""
	f.errMsg = ""
}

// BackToCredentials returns from the verification step to login, keeping the
// entered email and password.
func (f *AuthFlow) BackToCredentials() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateCredentials
	f.mode = ModeLogin
	f.errMsg = ""
}

func (f *AuthFlow) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *AuthFlow) fail(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = msg
}

func (f *AuthFlow) clearErr() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errMsg = ""
}

func (f *AuthFlow) enterVerification() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateVerification
	f.errMsg = ""
}

func (f *AuthFlow) Cooldown() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cooldown
}

// StartCooldown begins a countdown decremented once per second. A previous
// countdown is cancelled first so timers never overlap.
func (f *AuthFlow) StartCooldown(seconds int) {
	f.mu.Lock()
	if f.stop != nil {
		close(f.stop)
	}
	stop := make(chan struct{})
	f.stop = stop
	f.cooldown = seconds
	f.mu.Unlock()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				f.mu.Lock()
				f.cooldown--
				done := f.cooldown <= 0
				if done {
					f.cooldown = 0
					if f.stop == stop {
						f.stop = nil
					}
				}
				f.mu.Unlock()
				if done {
					return
				}
			}
		}
	}()
}

// Stop cancels a running cooldown countdown. Called on flow teardown so a
// navigation away never leaks the timer goroutine.
func (f *AuthFlow) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stop != nil {
		close(f.stop)
		f.stop = nil
	}
	f.cooldown = 0
}

// SanitizeCode strips non-digit characters and truncates to the 6-digit code
// length, mirroring how the input field filters as the user types.
func SanitizeCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(r)
		if b.Len() == 6 {
			break
		}
	}
	return b.String()
}

type AuthS struct {
	api    AuthAPII
	tokens TokenStoreI
	log    *zap.Logger
}

func NewAuthService(api AuthAPII, tokens TokenStoreI, log *zap.Logger) *AuthS {
	return &AuthS{api: api, tokens: tokens, log: log}
}

// Authenticated reports whether a token is stored for the user. Store errors
// are logged and read as "not authenticated".
func (a *AuthS) Authenticated(ctx context.Context, userID int64) bool {
	_, ok, err := a.tokens.Get(ctx, userID)
	if err != nil {
		a.log.Error("failed to read token store", zap.Int64("user_id", userID), zap.Error(err))
		return false
	}
	return ok
}

// SubmitCredentials runs the first auth step: registration issues a token
// directly, login either issues one or asks for the emailed verification
// code. Any remote failure lands in the flow's error and replaces the
// previous one.
func (a *AuthS) SubmitCredentials(ctx context.Context, userID int64, flow *AuthFlow) AuthOutcome {
	creds := flow.credentials()

	if flow.Mode() == ModeRegister {
		token, err := a.api.Register(ctx, creds)
		if err != nil {
			flow.fail(err.Error())
			return OutcomeFailed
		}
		return a.storeToken(ctx, userID, flow, token.AccessToken)
	}

	resp, err := a.api.LoginStep1(ctx, creds)
	if err != nil {
		flow.fail(err.Error())
		return OutcomeFailed
	}
	if resp.Requires2FA {
		flow.enterVerification()
		return OutcomePending2FA
	}
	if resp.AccessToken == "" {
		flow.fail("login failed, please try again")
		return OutcomeFailed
	}
	return a.storeToken(ctx, userID, flow, resp.AccessToken)
}

// SubmitVerification runs the second login step with the emailed code. On
// failure the flow stays in verification_pending.
func (a *AuthS) SubmitVerification(ctx context.Context, userID int64, flow *AuthFlow, code string) AuthOutcome {
	code = SanitizeCode(code)
	if len(code) != 6 {
		flow.fail("enter the 6-digit code from your email")
		return OutcomeFailed
	}

	token, err := a.api.LoginStep2(ctx, models.VerifyCodeRequest{Email: flow.Email(), Code: code})
	if err != nil {
		flow.fail(err.Error())
		return OutcomeFailed
	}

	outcome := a.storeToken(ctx, userID, flow, token.AccessToken)
	if outcome == OutcomeAuthenticated {
		flow.Stop()
	}
	return outcome
}

// ResendCode asks for a fresh verification code unless the cooldown is still
// running; during the cooldown no network call is made. Returns whether a
// code was sent.
func (a *AuthS) ResendCode(ctx context.Context, flow *AuthFlow) bool {
	if flow.Cooldown() > 0 {
		return false
	}
	if err := a.api.ResendCode(ctx, flow.Email()); err != nil {
		flow.fail(err.Error())
		return false
	}
	flow.clearErr()
	flow.StartCooldown(resendCooldownSeconds)
	return true
}

// Logout removes the stored token.
func (a *AuthS) Logout(ctx context.Context, userID int64) error {
	return a.tokens.Clear(ctx, userID)
}

func (a *AuthS) storeToken(ctx context.Context, userID int64, flow *AuthFlow, token string) AuthOutcome {
	if err := a.tokens.Set(ctx, userID, token); err != nil {
		a.log.Error("failed to persist token", zap.Int64("user_id", userID), zap.Error(err))
		flow.fail("failed to save your session, please try again")
		return OutcomeFailed
	}
	flow.clearErr()
	return OutcomeAuthenticated
}
