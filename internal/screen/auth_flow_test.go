package screen

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"parcel/internal/api"
	"parcel/internal/devserver"
	"parcel/internal/i18n"
	"parcel/internal/nav"
	"parcel/internal/storage"
)

// authFixture wires real controllers, storage and API clients against the
// in-memory stub backend.
type authFixture struct {
	store *storage.Store
	nav   *nav.Navigator
	auth  *AuthController
	reg   *i18n.Registry
	authC *api.AuthClient
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(devserver.New(devserver.Options{}).Router())
	t.Cleanup(srv.Close)

	store, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open storage: %v", err)
	}

	client := api.NewClient(api.Options{BaseURL: srv.URL + "/api", Tokens: store})
	authClient := api.NewAuthClient(client, store)
	navigator := nav.NewNavigator(nav.Splash{}, nil)
	reg := i18n.NewRegistry("en")

	return &authFixture{
		store: store,
		nav:   navigator,
		auth:  NewAuthController(authClient, navigator, reg, testLogger()),
		reg:   reg,
		authC: authClient,
	}
}

func TestLoginFlow_EndToEnd(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	ctx := context.Background()

	if err := f.auth.SubmitLogin(ctx, "asha@example.com"); err != nil {
		t.Fatalf("failed to submit login: %v", err)
	}
	route, ok := f.nav.Current().(nav.OTP)
	if !ok {
		t.Fatalf("expected the OTP screen, got %s", f.nav.Current().Name())
	}
	if route.Email != "asha@example.com" || route.Mode != "login" {
		t.Errorf("unexpected OTP route: %+v", route)
	}

	otp := NewOTPController(f.authC, f.nav, f.reg, testLogger(), route)

	// A wrong code keeps the user on the OTP screen with the server's
	// message shown inline.
	if err := otp.Verify(ctx, "999999"); err == nil {
		t.Fatal("expected the wrong code to fail")
	}
	if otp.ErrText == "" {
		t.Error("expected inline error text after a wrong code")
	}
	if f.nav.Current().Name() != nav.NameOTP {
		t.Errorf("expected to stay on OTP, got %s", f.nav.Current().Name())
	}
	if f.store.Token() != "" {
		t.Error("expected no token persisted after a failed verification")
	}

	if err := otp.Verify(ctx, "123456"); err != nil {
		t.Fatalf("failed to verify: %v (inline %q)", err, otp.ErrText)
	}
	if f.store.Token() == "" {
		t.Error("expected the session token persisted")
	}

	// The whole auth flow is popped: Home is the only entry, so back
	// exits the app instead of returning to the OTP screen.
	if f.nav.Current().Name() != nav.NameHome {
		t.Errorf("expected home, got %s", f.nav.Current().Name())
	}
	if f.nav.Depth() != 1 {
		t.Errorf("expected depth 1 after login, got %d", f.nav.Depth())
	}
}

func TestSignupFlow_LandsOnOnboarding(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	ctx := context.Background()

	if err := f.auth.SubmitRegister(ctx, "Asha Rao", "asha.new@example.com"); err != nil {
		t.Fatalf("failed to submit register: %v", err)
	}
	route := f.nav.Current().(nav.OTP)
	if route.Mode != "signup" || route.SignupName != "Asha Rao" {
		t.Errorf("expected the name carried through the flow, got %+v", route)
	}

	otp := NewOTPController(f.authC, f.nav, f.reg, testLogger(), route)
	if err := otp.Verify(ctx, "123456"); err != nil {
		t.Fatalf("failed to verify: %v", err)
	}

	if f.nav.Current().Name() != nav.NameReadyToBook {
		t.Errorf("expected the onboarding screen after signup, got %s", f.nav.Current().Name())
	}
	if f.nav.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", f.nav.Depth())
	}
}

func TestSubmitLogin_RejectsBadEmailLocally(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)

	err := f.auth.SubmitLogin(context.Background(), "not-an-email")
	if err != ErrInvalidEmail {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if f.nav.Current().Name() != nav.NameSplash {
		t.Errorf("expected no navigation, got %s", f.nav.Current().Name())
	}
}

func TestLogout_ClearsSessionAndResetsToLogin(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	ctx := context.Background()

	if err := f.auth.SubmitLogin(ctx, "asha@example.com"); err != nil {
		t.Fatalf("failed to submit login: %v", err)
	}
	otp := NewOTPController(f.authC, f.nav, f.reg, testLogger(), f.nav.Current().(nav.OTP))
	if err := otp.Verify(ctx, "123456"); err != nil {
		t.Fatalf("failed to verify: %v", err)
	}

	profile := NewProfileController(nil, f.store, f.nav, f.reg, testLogger())
	if err := profile.Logout(); err != nil {
		t.Fatalf("failed to log out: %v", err)
	}

	if f.store.Token() != "" {
		t.Error("expected the token cleared on logout")
	}
	if f.nav.Current().Name() != nav.NameLogin || f.nav.Depth() != 1 {
		t.Errorf("expected a fresh login stack, got %s at depth %d",
			f.nav.Current().Name(), f.nav.Depth())
	}
}

func TestReLoginAfterLogout_BackCannotReachAuthScreens(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	ctx := context.Background()

	login := func() {
		if err := f.auth.SubmitLogin(ctx, "asha@example.com"); err != nil {
			t.Fatalf("failed to submit login: %v", err)
		}
		otp := NewOTPController(f.authC, f.nav, f.reg, testLogger(), f.nav.Current().(nav.OTP))
		if err := otp.Verify(ctx, "123456"); err != nil {
			t.Fatalf("failed to verify: %v", err)
		}
	}

	login()
	profile := NewProfileController(nil, f.store, f.nav, f.reg, testLogger())
	if err := profile.Logout(); err != nil {
		t.Fatalf("failed to log out: %v", err)
	}

	// After logout the stack is rooted at Login, not Splash. The second
	// verification must still discard the whole auth flow.
	login()

	if f.nav.Current().Name() != nav.NameHome {
		t.Fatalf("expected home after re-login, got %s", f.nav.Current().Name())
	}
	if f.nav.Depth() != 1 {
		t.Errorf("expected depth 1 after re-login, got %d", f.nav.Depth())
	}
	if f.nav.Contains(nav.NameLogin) || f.nav.Contains(nav.NameOTP) {
		t.Error("expected no auth routes left on the back stack")
	}
	if f.nav.Back() {
		t.Error("expected back from Home to exit, not reveal an auth screen")
	}
}
