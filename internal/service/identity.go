package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"voyagee/internal/apperr"
	"voyagee/internal/model"
	"voyagee/internal/repo"
)

const (
	usersKey   = "voyagee-users"
	sessionKey = "voyagee-current-user"
)

// Identity manages the registry of local accounts and the single active
// session. The registry and the session are each persisted whole on every
// mutation, before the mutation is reported as committed.
type Identity struct {
	kv      repo.KV
	log     *zap.SugaredLogger
	current *model.User // sanitized session copy, nil when logged out
}

// NewIdentity builds the store and restores a previously persisted session,
// if any.
func NewIdentity(kv repo.KV, log *zap.SugaredLogger) *Identity {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &Identity{kv: kv, log: log}
	if b, err := kv.Get(sessionKey); err == nil {
		var u model.User
		if err := json.Unmarshal(b, &u); err == nil && u.ID != "" {
			u = u.Sanitized()
			s.current = &u
		}
	}
	return s
}

func (s *Identity) loadUsers() ([]model.User, error) {
	b, err := s.kv.Get(usersKey)
	if errors.Is(err, repo.ErrKeyNotFound) {
		return []model.User{}, nil
	}
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Persistence, "reading account registry failed")
	}
	var users []model.User
	if err := json.Unmarshal(b, &users); err != nil {
		return nil, apperr.Wrap(err, apperr.Persistence, "account registry is corrupt")
	}
	return users, nil
}

func (s *Identity) saveUsers(users []model.User) error {
	b, err := json.Marshal(users)
	if err != nil {
		return apperr.PersistenceFailed(err)
	}
	if err := s.kv.Set(usersKey, b); err != nil {
		return apperr.PersistenceFailed(err)
	}
	return nil
}

func (s *Identity) saveSession(u *model.User) error {
	if u == nil {
		if err := s.kv.Remove(sessionKey); err != nil {
			return apperr.PersistenceFailed(err)
		}
		return nil
	}
	b, err := json.Marshal(u.Sanitized())
	if err != nil {
		return apperr.PersistenceFailed(err)
	}
	if err := s.kv.Set(sessionKey, b); err != nil {
		return apperr.PersistenceFailed(err)
	}
	return nil
}

// Current returns the active user, or NoActiveSession.
func (s *Identity) Current() (model.User, error) {
	if s.current == nil {
		return model.User{}, apperr.SessionRequired()
	}
	return *s.current, nil
}

// SignUp registers a new account and opens a session for it. The email match
// against existing accounts is a case-sensitive exact comparison.
func (s *Identity) SignUp(name, email, password string) (model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return model.User{}, apperr.ValidationFailed("name, email and password are required", "")
	}
	users, err := s.loadUsers()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return model.User{}, apperr.New(apperr.DuplicateEmail, "email already registered", email)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, apperr.Wrap(err, apperr.Validation, "hashing password failed")
	}
	u := model.User{
		ID:                uuid.NewString(),
		Name:              name,
		Email:             email,
		PasswordHash:      string(hash),
		PreferredCurrency: "BRL",
	}
	if err := s.saveUsers(append(users, u)); err != nil {
		return model.User{}, err
	}
	pub := u.Sanitized()
	if err := s.saveSession(&pub); err != nil {
		return model.User{}, err
	}
	s.current = &pub
	s.log.Infow("account created", "user_id", u.ID)
	return pub, nil
}

// Login opens a session for the account matching email and password.
func (s *Identity) Login(email, password string) (model.User, error) {
	users, err := s.loadUsers()
	if err != nil {
		return model.User{}, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			break
		}
		pub := u.Sanitized()
		if err := s.saveSession(&pub); err != nil {
			return model.User{}, err
		}
		s.current = &pub
		s.log.Infow("session opened", "user_id", u.ID)
		return pub, nil
	}
	return model.User{}, apperr.AuthenticationFailed("invalid email or password")
}

// Logout clears the active session. Account data is untouched.
func (s *Identity) Logout() error {
	if err := s.saveSession(nil); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// ProfileUpdate carries the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Name                  *string
	Email                 *string
	Phone                 *string
	Birthdate             *string
	Nationality           *string
	Passport              *string
	PreferredCurrency     *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

// UpdateProfile merges the update into the registry record of the active
// user and refreshes the session copy.
func (s *Identity) UpdateProfile(upd ProfileUpdate) error {
	if s.current == nil {
		return apperr.SessionRequired()
	}
	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	idx := -1
	for i, u := range users {
		if u.ID == s.current.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return apperr.NotFound("user", s.current.ID)
	}
	u := users[idx]
	if upd.Name != nil {
		if strings.TrimSpace(*upd.Name) == "" {
			return apperr.ValidationFailed("name cannot be empty", "")
		}
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		if strings.TrimSpace(*upd.Email) == "" {
			return apperr.ValidationFailed("email cannot be empty", "")
		}
		for _, other := range users {
			if other.ID != u.ID && other.Email == *upd.Email {
				return apperr.New(apperr.DuplicateEmail, "email already registered", *upd.Email)
			}
		}
		u.Email = *upd.Email
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Birthdate != nil {
		if *upd.Birthdate != "" {
			if _, err := model.ParseDate(*upd.Birthdate); err != nil {
				return apperr.ValidationFailed("invalid birthdate", *upd.Birthdate)
			}
		}
		u.Birthdate = *upd.Birthdate
	}
	if upd.Nationality != nil {
		u.Nationality = *upd.Nationality
	}
	if upd.Passport != nil {
		u.Passport = *upd.Passport
	}
	if upd.PreferredCurrency != nil {
		if !model.ValidCurrency(*upd.PreferredCurrency) {
			return apperr.ValidationFailed("unknown currency code", *upd.PreferredCurrency)
		}
		u.PreferredCurrency = *upd.PreferredCurrency
	}
	if upd.EmergencyContactName != nil {
		u.EmergencyContactName = *upd.EmergencyContactName
	}
	if upd.EmergencyContactPhone != nil {
		u.EmergencyContactPhone = *upd.EmergencyContactPhone
	}
	users[idx] = u
	if err := s.saveUsers(users); err != nil {
		return err
	}
	pub := u.Sanitized()
	if err := s.saveSession(&pub); err != nil {
		return err
	}
	s.current = &pub
	return nil
}

// ChangePassword overwrites the stored password after verifying the current
// one. The session stays open; there is only one session to invalidate.
func (s *Identity) ChangePassword(currentPassword, newPassword string) error {
	if s.current == nil {
		return apperr.SessionRequired()
	}
	if newPassword == "" {
		return apperr.ValidationFailed("new password is required", "")
	}
	users, err := s.loadUsers()
	if err != nil {
		return err
	}
	for i, u := range users {
		if u.ID != s.current.ID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
			return apperr.AuthenticationFailed("current password does not match")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Wrap(err, apperr.Validation, "hashing password failed")
		}
		users[i].PasswordHash = string(hash)
		return s.saveUsers(users)
	}
	return apperr.NotFound("user", s.current.ID)
}
