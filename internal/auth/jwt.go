package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/deskware/helpdesk-system/internal/core/domain"
)

// DefaultTokenTTL is the token lifetime when none is configured. There is no
// refresh mechanism; expiry forces a full re-login.
const DefaultTokenTTL = 5 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the snapshot of identity and role data embedded in a token. It is
// a point-in-time copy: role changes after issuance are not reflected until
// the user logs in again.
type Claims struct {
	UserID        string            `json:"id"`
	Role          domain.Role       `json:"role"`
	RequestedRole domain.Role       `json:"requestedRole"`
	RoleStatus    domain.RoleStatus `json:"roleStatus"`
	DisplayName   string            `json:"displayName"`
	Email         string            `json:"email"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a process-wide HS256 secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's current claim snapshot.
func (i *Issuer) Issue(u *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:        u.ID,
		Role:          u.Role,
		RequestedRole: u.RequestedRole,
		RoleStatus:    u.RoleStatus,
		DisplayName:   u.DisplayName,
		Email:         u.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify parses and validates a signed token and returns its claims.
// Expired tokens report ErrTokenExpired; every other failure (bad signature,
// malformed input, wrong algorithm) reports ErrTokenInvalid.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
