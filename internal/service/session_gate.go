package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-be/internal/config"
	"portfolio-be/internal/contentstore"
	"portfolio-be/internal/entity"
	"portfolio-be/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type ISessionGate interface {
	Authenticate(ctx context.Context, password string) (*entity.Session, error)
	CurrentSession(ctx context.Context) (*entity.Session, error)
	SignOut(ctx context.Context) error
	IssueToken(session *entity.Session) (string, error)
	VerifyToken(ctx context.Context, token string) (*entity.Session, error)
}

type sessionGate struct {
	store        *contentstore.Store
	passwordHash []byte
	jwtSecret    []byte
	admin        config.AdminConfig
	logger       logger.ILogger
}

func NewSessionGate(store *contentstore.Store, admin config.AdminConfig, log logger.ILogger) (ISessionGate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &sessionGate{
		store:        store,
		passwordHash: hash,
		jwtSecret:    []byte(admin.JWTSecret),
		admin:        admin,
		logger:       log,
	}, nil
}

func (g *sessionGate) Authenticate(ctx context.Context, password string) (*entity.Session, error) {
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		g.logger.Warn("SessionGate", "Rejected admin login", nil)
		return nil, ErrInvalidCredentials
	}

	session := &entity.Session{
		Id:        g.admin.UserID,
		Login:     g.admin.Login,
		Name:      g.admin.DisplayName,
		AvatarURL: g.admin.AvatarURL,
	}
	if err := g.store.PutRecord(ctx, contentstore.KeySession, session); err != nil {
		return nil, err
	}

	g.logger.Info("SessionGate", "Admin signed in", map[string]interface{}{"login": session.Login})
	return session, nil
}

func (g *sessionGate) CurrentSession(ctx context.Context) (*entity.Session, error) {
	var session entity.Session
	found, err := g.store.GetRecord(ctx, contentstore.KeySession, &session)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &session, nil
}

func (g *sessionGate) SignOut(ctx context.Context) error {
	if err := g.store.Remove(ctx, contentstore.AuthKeys...); err != nil {
		return err
	}
	g.logger.Info("SessionGate", "Admin signed out", nil)
	return nil
}

// IssueToken signs a token for the session. It has no expiry: the token is
// only honoured while the stored session it names exists.
func (g *sessionGate) IssueToken(session *entity.Session) (string, error) {
	claims := jwt.MapClaims{
		"user_id": session.Id,
		"login":   session.Login,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.jwtSecret)
}

func (g *sessionGate) VerifyToken(ctx context.Context, tokenStr string) (*entity.Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrUnauthorized
	}
	userID, _ := claims["user_id"].(string)

	session, err := g.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Id != userID {
		return nil, ErrUnauthorized
	}
	return session, nil
}

// IsUnauthorized reports errors that should surface as 401.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidCredentials)
}
