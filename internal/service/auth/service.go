package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

// CookieName имя cookie с токеном сессии администратора
const CookieName = "salon_admin_session"

// Config параметры аутентификации администратора
type Config struct {
	Username     string
	PasswordHash string // bcrypt
	HashKey      []byte // ключ подписи токена
	BlockKey     []byte // ключ шифрования токена (16, 24 или 32 байта; пусто - без шифрования)
	TTL          time.Duration
}

// Session выданная сессия администратора
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Claims содержимое токена сессии
type Claims struct {
	Username  string    `json:"u"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// Service аутентификация единственного администратора салона
// Токен - подписанное (и опционально зашифрованное) значение securecookie,
// принимается как из заголовка Authorization, так и из cookie
type Service struct {
	codec        *securecookie.SecureCookie
	username     string
	passwordHash []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис аутентификации
// Если HashKey пуст, генерируется случайный ключ: сессии не переживут перезапуск
func NewService(cfg Config, logger Logger) *Service {
	hashKey := cfg.HashKey
	if len(hashKey) == 0 {
		logger.Warn("AuthService: session hash key is not configured, using a random key")
		hashKey = securecookie.GenerateRandomKey(32)
	}

	var blockKey []byte
	if len(cfg.BlockKey) > 0 {
		blockKey = cfg.BlockKey
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(cfg.TTL.Seconds()))

	return &Service{
		codec:        codec,
		username:     cfg.Username,
		passwordHash: []byte(cfg.PasswordHash),
		ttl:          cfg.TTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// TTL время жизни сессии
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login проверяет учётные данные и выдаёт токен сессии
func (s *Service) Login(username, password string) (*Session, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// bcrypt выполняется всегда, чтобы время ответа не выдавало существование логина
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		s.logger.Warn("Login: invalid credentials for username=%q", username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	claims := Claims{
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}

	token, err := s.codec.Encode(CookieName, claims)
	if err != nil {
		return nil, fmt.Errorf("auth: encode session: %w", err)
	}

	s.logger.Info("Login: admin %q logged in, session expires at %s", username, claims.ExpiresAt.Format(time.RFC3339))
	return &Session{Token: token, ExpiresAt: claims.ExpiresAt}, nil
}

// Validate проверяет токен и возвращает его содержимое
func (s *Service) Validate(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	var claims Claims
	if err := s.codec.Decode(CookieName, token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Username != s.username {
		return nil, ErrInvalidToken
	}
	if !s.timeProvider.Now().Before(claims.ExpiresAt) {
		return nil, ErrTokenExpired
	}

	return &claims, nil
}

// HashPassword возвращает bcrypt-хеш пароля для конфигурации
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}
