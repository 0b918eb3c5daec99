package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"prayerhub/models"
)

// CookieName is the session cookie set on login
const CookieName = "ph_session"

// ErrNotFound is returned when a token does not resolve to a live session
var ErrNotFound = errors.New("session not found or expired")

// Store is the injectable session backend. The memory implementation is
// process-local and lost on restart; the db implementation survives both.
type Store interface {
	Create(userID uint, ttl time.Duration) (token string, err error)
	Get(token string) (userID uint, err error)
	Destroy(token string) error
	DestroyUserSessions(userID uint) error
}

// Active is the store selected at startup (see session.Init)
var Active Store

// Init selects the session backend from configuration. Anything other than
// "db" falls back to the in-memory store.
func Init(mode string, db *gorm.DB) {
	if mode == "db" {
		Active = NewDBStore(db)
		return
	}
	Active = NewMemoryStore()
}

// ---- in-memory store ----

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore keeps sessions in a process-local map
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memorySession)}
}

func (s *MemoryStore) Create(userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return token, nil
}

func (s *MemoryStore) Get(token string) (uint, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return 0, ErrNotFound
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return 0, ErrNotFound
	}
	return sess.userID, nil
}

func (s *MemoryStore) Destroy(token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DestroyUserSessions(userID uint) error {
	s.mu.Lock()
	for token, sess := range s.sessions {
		if sess.userID == userID {
			delete(s.sessions, token)
		}
	}
	s.mu.Unlock()
	return nil
}

// ---- database store ----

// DBStore keeps sessions in the sessions table
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) Create(userID uint, ttl time.Duration) (string, error) {
	sess := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return "", err
	}
	return sess.Token, nil
}

func (s *DBStore) Get(token string) (uint, error) {
	var sess models.Session
	if err := s.db.Where("token = ?", token).First(&sess).Error; err != nil {
		return 0, ErrNotFound
	}
	if time.Now().After(sess.ExpiresAt) {
		s.db.Unscoped().Delete(&sess)
		return 0, ErrNotFound
	}
	return sess.UserID, nil
}

func (s *DBStore) Destroy(token string) error {
	return s.db.Unscoped().Where("token = ?", token).Delete(&models.Session{}).Error
}

func (s *DBStore) DestroyUserSessions(userID uint) error {
	return s.db.Unscoped().Where("user_id = ?", userID).Delete(&models.Session{}).Error
}
