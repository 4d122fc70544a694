package store

import (
	"context"
	"time"

	"farm2market_back_end/internal/models"

	"github.com/google/uuid"
)

const (
	usersKey      = "farm-users"
	sessionPrefix = "farm-user:"
)

// UserStore gère l'annuaire des utilisateurs et les sessions actives.
// L'annuaire complet (mots de passe inclus, démo oblige) vit sous `farm-users`,
// la session de chaque utilisateur sous `farm-user:<id>`.
type UserStore struct {
	kv *KV

	// delay simule la latence réseau du login/signup historique.
	// Annulable via le contexte, contrairement à l'original.
	delay   time.Duration
	nowFunc func() time.Time
	idFunc  func() string
}

func NewUserStore(kv *KV, delay time.Duration) *UserStore {
	return &UserStore{
		kv:      kv,
		delay:   delay,
		nowFunc: time.Now,
		idFunc:  func() string { return "user-" + uuid.NewString() },
	}
}

func (s *UserStore) directory(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if _, err := s.kv.GetJSON(ctx, usersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// wait honore le délai simulé, interruptible par le contexte
func (s *UserStore) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SignUp crée un compte et ouvre une session.
// ErrDuplicateEmail si l'email est déjà dans l'annuaire.
func (s *UserStore) SignUp(ctx context.Context, name, email, password, role string) (*models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:       s.idFunc(),
		Name:     name,
		Email:    email,
		Password: password, // en clair : démo uniquement
		Role:     role,
		JoinDate: s.nowFunc().Format("2006-01-02"),
	}
	users = append(users, user)
	if err := s.kv.SetJSON(ctx, usersKey, users); err != nil {
		return nil, err
	}

	session := models.SessionFrom(user)
	if err := s.kv.SetJSON(ctx, sessionPrefix+user.ID, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignIn vérifie email + mot de passe (comparaison exacte) et ouvre une session
func (s *UserStore) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email && u.Password == password {
			if u.JoinDate == "" {
				u.JoinDate = s.nowFunc().Format("2006-01-02")
			}
			session := models.SessionFrom(u)
			if err := s.kv.SetJSON(ctx, sessionPrefix+u.ID, session); err != nil {
				return nil, err
			}
			return &session, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// UpdateProfile fusionne le patch dans l'annuaire et la session.
// Le mot de passe n'est jamais touché.
func (s *UserStore) UpdateProfile(ctx context.Context, userID string, patch models.ProfilePatch) (*models.Session, error) {
	current, err := s.CurrentSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotAuthenticated
	}

	users, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}
	idx := -1
	for i, u := range users {
		if u.ID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}

	patch.Apply(&users[idx])
	if err := s.kv.SetJSON(ctx, usersKey, users); err != nil {
		return nil, err
	}

	session := models.SessionFrom(users[idx])
	if err := s.kv.SetJSON(ctx, sessionPrefix+userID, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// SignOut ferme la session. Idempotent : sans session active, ne fait rien.
func (s *UserStore) SignOut(ctx context.Context, userID string) error {
	return s.kv.Delete(ctx, sessionPrefix+userID)
}

// CurrentSession relit la session persistée ; nil si absente ou illisible
func (s *UserStore) CurrentSession(ctx context.Context, userID string) (*models.Session, error) {
	var session models.Session
	ok, err := s.kv.GetJSON(ctx, sessionPrefix+userID, &session)
	if err != nil {
		return nil, err
	}
	if !ok || session.ID == "" {
		return nil, nil
	}
	return &session, nil
}
