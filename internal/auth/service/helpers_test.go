package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/scanpass/scanpass/internal/auth/store"
	"github.com/scanpass/scanpass/internal/auth/store/drivers/sqlite"
	"github.com/scanpass/scanpass/pkg/cryptox"
	"github.com/scanpass/scanpass/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "scanpass-test"

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestSigner(t *testing.T) *jwtx.HS256 {
	t.Helper()

	h, err := jwtx.NewHS256("service-test-secret", testIssuer)
	require.NoError(t, err)
	return h
}

func newAuthService(t *testing.T, st store.Store) *AuthService {
	t.Helper()

	return &AuthService{
		Store:    st,
		Signer:   newTestSigner(t),
		Issuer:   testIssuer,
		HashCost: cryptox.DefaultCost,
	}
}

// fakeMailer records dispatched reset links and can be told to fail.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string // reset links in dispatch order
	to    []string
	fail  error
	calls int
}

func (f *fakeMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++
	if f.fail != nil {
		return f.fail
	}
	f.to = append(f.to, to)
	f.sent = append(f.sent, resetLink)
	return nil
}

func (f *fakeMailer) lastLink(t *testing.T) string {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.sent, "no reset email was dispatched")
	return f.sent[len(f.sent)-1]
}
