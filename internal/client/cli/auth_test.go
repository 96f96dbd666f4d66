package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/client/session"
	"github.com/dmitrijs2005/tablekeeper/internal/logging"
)

// stubInputs replaces the interactive input seams with scripted answers.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPassword })

	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			t.Fatalf("unexpected text prompt #%d", ti)
		}
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if pi >= len(passwords) {
			t.Fatalf("unexpected password prompt #%d", pi)
		}
		v := passwords[pi]
		pi++
		return []byte(v), nil
	}
}

type fakeAuthSvc struct {
	registerCalls int
	loginCalls    int
	logoutCalls   int
	user          models.User
	err           error
}

func (f *fakeAuthSvc) Register(_ context.Context, email, _, nickname string) (*models.User, error) {
	f.registerCalls++
	if f.err != nil {
		return nil, f.err
	}
	u := f.user
	u.Email = email
	u.Nickname = nickname
	return &u, nil
}

func (f *fakeAuthSvc) Login(_ context.Context, email, _ string) (*models.User, error) {
	f.loginCalls++
	if f.err != nil {
		return nil, f.err
	}
	u := f.user
	u.Email = email
	return &u, nil
}

func (f *fakeAuthSvc) Logout() error {
	f.logoutCalls++
	return nil
}

type fakeUserSvc struct {
	passwordCalls int
	profileCalls  int
	user          models.User
}

func (f *fakeUserSvc) Profile(_ context.Context) (*models.User, error) {
	f.profileCalls++
	u := f.user
	return &u, nil
}

func (f *fakeUserSvc) UpdateProfile(_ context.Context, nickname, avatar string) (*models.User, error) {
	u := f.user
	u.Nickname = nickname
	u.Avatar = avatar
	return &u, nil
}

func (f *fakeUserSvc) UpdatePassword(_ context.Context, _, _ string) error {
	f.passwordCalls++
	return nil
}

func testApp(t *testing.T) (*App, *fakeAuthSvc, *fakeUserSvc) {
	t.Helper()
	auth := &fakeAuthSvc{user: models.User{ID: "u1", Nickname: "tester"}}
	user := &fakeUserSvc{user: models.User{ID: "u1", Email: "test@example.com", Nickname: "tester"}}
	return &App{
		session: session.NewStore(t.TempDir()),
		auth:    auth,
		user:    user,
		reader:  bufio.NewReader(strings.NewReader("")),
		log:     logging.NewNopLogger(),
	}, auth, user
}

func TestRegister_ValidationBlocksNetwork(t *testing.T) {
	app, auth, _ := testApp(t)
	// Short password: the request must never be sent.
	stubInputs(t, []string{"test@example.com", "tester"}, []string{"123", "123"})

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must be at least 6 characters")
	assert.Equal(t, 0, auth.registerCalls)
}

func TestRegister_PasswordMismatchBlocksNetwork(t *testing.T) {
	app, auth, _ := testApp(t)
	stubInputs(t, []string{"test@example.com", "tester"}, []string{"password123", "password456"})

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
	assert.Equal(t, 0, auth.registerCalls)
}

func TestRegister_Success(t *testing.T) {
	app, auth, _ := testApp(t)
	stubInputs(t, []string{"test@example.com", "tester"}, []string{"password123", "password123"})

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, 1, auth.registerCalls)
}

func TestLogin_InvalidEmailBlocksNetwork(t *testing.T) {
	app, auth, _ := testApp(t)
	stubInputs(t, []string{"not-an-email"}, []string{"password123"})

	err := app.Login(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please enter a valid email address")
	assert.Equal(t, 0, auth.loginCalls)
}

func TestLogin_Success(t *testing.T) {
	app, auth, _ := testApp(t)
	stubInputs(t, []string{"test@example.com"}, []string{"password123"})

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, 1, auth.loginCalls)
}

func TestLogout(t *testing.T) {
	app, auth, _ := testApp(t)
	require.NoError(t, app.Logout(context.Background()))
	assert.Equal(t, 1, auth.logoutCalls)
}

func TestChangePassword_MismatchBlocksNetwork(t *testing.T) {
	app, _, user := testApp(t)
	stubInputs(t, nil, []string{"oldpass", "password123", "password456"})

	err := app.ChangePassword(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, user.passwordCalls)
}

func TestChangePassword_Success(t *testing.T) {
	app, _, user := testApp(t)
	stubInputs(t, nil, []string{"oldpass", "password123", "password123"})

	require.NoError(t, app.ChangePassword(context.Background()))
	assert.Equal(t, 1, user.passwordCalls)
}
