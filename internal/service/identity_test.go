package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"voyagee/internal/apperr"
	"voyagee/internal/repo"
)

func newIdentity(t *testing.T) (*Identity, *repo.Memory) {
	t.Helper()
	kv := repo.NewMemory()
	return NewIdentity(kv, nil), kv
}

func TestSignUpAndCurrent(t *testing.T) {
	s, _ := newIdentity(t)

	u, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, "BRL", u.PreferredCurrency)
	assert.Empty(t, u.PasswordHash, "returned copy must not carry the hash")

	cur, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, u.ID, cur.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	s, kv := newIdentity(t)

	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)
	_, err = s.SignUp("Bob", "ana@x.com", "5678")
	require.Error(t, err)
	assert.Equal(t, apperr.DuplicateEmail, apperr.TypeOf(err))

	// Registry still holds exactly one account for that email.
	users, err := NewIdentity(kv, nil).loadUsers()
	require.NoError(t, err)
	count := 0
	for _, u := range users {
		if u.Email == "ana@x.com" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestSignUpEmailMatchIsCaseSensitive(t *testing.T) {
	s, _ := newIdentity(t)

	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)
	// Exact-match comparison: a different casing registers a second account.
	_, err = s.SignUp("Ana", "Ana@x.com", "1234")
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	s, kv := newIdentity(t)
	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)
	require.NoError(t, s.Logout())

	_, err = s.Login("ana@x.com", "wrong")
	assert.Equal(t, apperr.InvalidCredentials, apperr.TypeOf(err))
	_, err = s.Login("nobody@x.com", "1234")
	assert.Equal(t, apperr.InvalidCredentials, apperr.TypeOf(err))

	u, err := s.Login("ana@x.com", "1234")
	require.NoError(t, err)
	assert.Empty(t, u.PasswordHash)

	// The session survives a restart over the same storage.
	again := NewIdentity(kv, nil)
	cur, err := again.Current()
	require.NoError(t, err)
	assert.Equal(t, u.ID, cur.ID)
}

func TestLogoutKeepsAccounts(t *testing.T) {
	s, _ := newIdentity(t)
	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)

	require.NoError(t, s.Logout())
	_, err = s.Current()
	assert.Equal(t, apperr.NoActiveSession, apperr.TypeOf(err))

	_, err = s.Login("ana@x.com", "1234")
	assert.NoError(t, err)
}

func TestUpdateProfile(t *testing.T) {
	s, _ := newIdentity(t)
	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)

	phone := "+55 61 99999-0000"
	currency := "EUR"
	require.NoError(t, s.UpdateProfile(ProfileUpdate{Phone: &phone, PreferredCurrency: &currency}))

	cur, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, phone, cur.Phone)
	assert.Equal(t, "EUR", cur.PreferredCurrency)

	bad := "XXX"
	err = s.UpdateProfile(ProfileUpdate{PreferredCurrency: &bad})
	assert.Equal(t, apperr.Validation, apperr.TypeOf(err))
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	s, _ := newIdentity(t)
	name := "x"
	err := s.UpdateProfile(ProfileUpdate{Name: &name})
	assert.Equal(t, apperr.NoActiveSession, apperr.TypeOf(err))
}

func TestChangePassword(t *testing.T) {
	s, kv := newIdentity(t)
	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)

	err = s.ChangePassword("wrong", "abcd")
	assert.Equal(t, apperr.InvalidCredentials, apperr.TypeOf(err))

	// Stored password unchanged after the failed attempt.
	users, err := s.loadUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("1234")))

	require.NoError(t, s.ChangePassword("1234", "abcd"))
	require.NoError(t, s.Logout())
	_, err = s.Login("ana@x.com", "1234")
	assert.Error(t, err)
	_, err = s.Login("ana@x.com", "abcd")
	assert.NoError(t, err)
	_ = kv
}

func TestChangePasswordRequiresSession(t *testing.T) {
	s, _ := newIdentity(t)
	err := s.ChangePassword("a", "b")
	assert.Equal(t, apperr.NoActiveSession, apperr.TypeOf(err))
}

func TestSignUpPersistFailure(t *testing.T) {
	kv := repo.NewMemory()
	failing := &repo.Failing{KV: kv, FailSet: errors.New("disk full")}
	s := NewIdentity(failing, nil)

	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.Error(t, err)
	assert.Equal(t, apperr.Persistence, apperr.TypeOf(err))
	_, err = s.Current()
	assert.Error(t, err, "a failed persist must not open a session")
	assert.Equal(t, 0, kv.Len())
}

func TestPasswordsAreHashedAtRest(t *testing.T) {
	s, _ := newIdentity(t)
	_, err := s.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)

	users, err := s.loadUsers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotEqual(t, "1234", users[0].PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("1234")))
}
