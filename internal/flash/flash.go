package flash

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName carries pending notices between a redirect and the next page
	CookieName = "flash"

	CategoryError   = "error"
	CategorySuccess = "success"

	issuer     = "contact-form-backend"
	pendingKey = "flash.pending"
)

// Message is one notice shown to the user once
type Message struct {
	Category string `json:"category"`
	Text     string `json:"message"`
}

// Error builds an error notice
func Error(text string) Message {
	return Message{Category: CategoryError, Text: text}
}

// Success builds a success notice
func Success(text string) Message {
	return Message{Category: CategorySuccess, Text: text}
}

type claims struct {
	Messages []Message `json:"messages"`
	jwt.RegisteredClaims
}

// Store signs notices into an HS256 token kept in a cookie
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewStore creates a flash store signing with secret
func NewStore(secret string, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    10 * time.Minute,
		secure: secure,
	}
}

// Add queues messages for the next page view. Notices still unread from an
// earlier request are kept in front of the new ones.
func (s *Store) Add(c *gin.Context, messages ...Message) error {
	pending, ok := c.Get(pendingKey)
	var queued []Message
	if ok {
		queued = pending.([]Message)
	} else {
		queued = s.read(c)
	}
	queued = append(queued, messages...)

	token, err := s.sign(queued)
	if err != nil {
		return fmt.Errorf("failed to sign flash messages: %w", err)
	}

	c.Set(pendingKey, queued)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(s.ttl.Seconds()), "/", "", s.secure, true)
	return nil
}

// Pop returns the pending notices and clears them. A missing, expired or
// tampered cookie yields no notices.
func (s *Store) Pop(c *gin.Context) []Message {
	messages := s.read(c)
	if _, err := c.Cookie(CookieName); err == nil {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(CookieName, "", -1, "/", "", s.secure, true)
	}
	return messages
}

func (s *Store) read(c *gin.Context) []Message {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	messages, err := s.parse(raw)
	if err != nil {
		return nil
	}
	return messages
}

func (s *Store) sign(messages []Message) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Messages: messages,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	})
	return token.SignedString(s.secret)
}

func (s *Store) parse(raw string) ([]Message, error) {
	token, err := jwt.ParseWithClaims(raw, &claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse flash token: %w", err)
	}

	if c, ok := token.Claims.(*claims); ok && token.Valid {
		return c.Messages, nil
	}
	return nil, fmt.Errorf("invalid flash token")
}
