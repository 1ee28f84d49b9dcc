package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"errors"
	"regexp"
	"sort"
	"time"

	"github.com/TheoIlgazCelik/uwh-team-maker/auth/storage"
	"github.com/TheoIlgazCelik/uwh-team-maker/auth/users"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

type Service struct {
	storage storage.AuthStorage
	cfg     Config
	rules   []compiledRule
}

type compiledRule struct {
	path   *regexp.Regexp
	method []string
	allow  []string
}

var (
	ErrForbidden     = errors.New("access denied")
	ErrNotAuthorized = errors.New("unauthorized")
)

func New(ctx context.Context, cfg Config, storage storage.AuthStorage) (*Service, error) {
	rules := make([]Rule, len(cfg.Rules))
	copy(rules, cfg.Rules)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Order < rules[j].Order
	})
	compiled := make([]compiledRule, 0, len(rules))
	for _, rule := range rules {
		r, err := regexp.Compile(rule.Path)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, compiledRule{
			path:   r,
			method: rule.Method,
			allow:  rule.Allow,
		})
	}
	s := Service{
		cfg:     cfg,
		storage: storage,
		rules:   compiled,
	}
	err := s.bootstrapRoot(ctx)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// bootstrapRoot creates the root admin on first start.
func (s *Service) bootstrapRoot(ctx context.Context) error {
	_, err := s.storage.GetUserSecret(ctx, users.User{Name: "root"})
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	salt, err := randomSalt()
	if err != nil {
		return err
	}
	secret := generateSecret(s.cfg.RootPassword, s.cfg.PasswordPepper, salt)
	return s.storage.CreateUser(ctx, users.User{
		ID:           uuid.New(),
		Name:         "root",
		Roles:        []string{users.RoleAdmin},
		RegisteredAt: time.Now(),
	}, secret)
}

func (s *Service) Login(ctx context.Context, name string, password string) (users.User, error) {
	userSecret, err := s.storage.GetUserSecret(ctx, users.User{Name: name})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrNotAuthorized
		}
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, userSecret.Salt)
	user, err := s.storage.SignIn(ctx, name, secret.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, ErrNotAuthorized
		}
		return users.User{}, err
	}
	return user, nil
}

func (s *Service) SignUp(ctx context.Context, name string, email string, password string) (users.User, error) {
	salt, err := randomSalt()
	if err != nil {
		return users.User{}, err
	}
	secret := generateSecret(password, s.cfg.PasswordPepper, salt)
	user := users.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Roles:        []string{users.RoleUser},
		RegisteredAt: time.Now(),
	}
	err = s.storage.CreateUser(ctx, user, secret)
	if err != nil {
		return users.User{}, err
	}
	return user, nil
}

func (s *Service) GenerateJWTCookie(userID uuid.UUID, host string) (*fiber.Cookie, error) {
	expiresIn, err := time.ParseDuration(s.cfg.Expiration)
	if err != nil {
		return nil, err
	}
	expirationTime := time.Now().Add(expiresIn)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: expirationTime.Unix(),
		IssuedAt:  time.Now().Unix(),
		Subject:   userID.String(),
	})
	tokenString, err := token.SignedString([]byte(s.cfg.Token))
	if err != nil {
		return nil, err
	}
	return &fiber.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		Domain:   host,
		Expires:  expirationTime,
		HTTPOnly: true,
	}, nil
}

// Auth resolves the user behind the token and checks it against the
// first rule matching the request path and method.
func (s *Service) Auth(ctx context.Context, token string, method string, url string) (users.User, error) {
	user, err := s.getUserFromToken(ctx, token)
	if err != nil {
		return users.User{}, ErrNotAuthorized
	}

	for _, rule := range s.rules {
		if !rule.path.MatchString(url) {
			continue
		}
		for _, ruleMethod := range rule.method {
			if ruleMethod != "*" && ruleMethod != method {
				continue
			}
			for _, role := range rule.allow {
				if role == "*" {
					return user, nil
				}
				for _, userRole := range user.Roles {
					if role == userRole {
						return user, nil
					}
				}
			}
			if user.ID == uuid.Nil {
				return users.User{}, ErrNotAuthorized
			}
			return users.User{}, ErrForbidden
		}
	}
	return users.User{}, ErrForbidden
}

func (s *Service) getUserFromToken(ctx context.Context, token string) (users.User, error) {
	if token == "" {
		return users.User{}, nil
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.StandardClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Token), nil
	})
	if err != nil {
		return users.User{}, err
	}
	if !parsed.Valid {
		return users.User{}, errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(*jwt.StandardClaims)
	if !ok {
		return users.User{}, errors.New("bad request")
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return users.User{}, err
	}
	return s.storage.GetUser(ctx, id)
}

func randomSalt() ([]byte, error) {
	salt := make([]byte, 8)
	_, err := rand.Read(salt)
	if err != nil {
		return nil, err
	}
	return salt, nil
}

func generateSecret(password string, pepper string, salt []byte) users.Secret {
	sha := sha256.New()
	sha.Write([]byte(pepper + password))
	sha.Write(salt)
	return users.Secret{
		PasswordHash: sha.Sum(nil),
		Salt:         salt,
	}
}
