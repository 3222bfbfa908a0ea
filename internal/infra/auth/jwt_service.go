package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"meetfind/config"
	"meetfind/internal/domain/service"
	"meetfind/internal/util"
)

const (
	// tokenTTL bounds the exposure from a leaked token.
	tokenTTL = 48 * time.Hour

	// nonceLength is the size of the random token id. It makes two tokens
	// issued for the same user within the same second distinct.
	nonceLength = 16
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string // Secret key for HS256 signing.
	issuer string // Issuer claim stamped on and required from every token.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.HS256 == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.SecretKey.Issuer == "" {
		return nil, errors.New("jwt issuer must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.HS256,
		issuer: cfg.SecretKey.Issuer,
	}, nil
}

// Issue creates a signed identity token for the given username.
func (s *jwtService) Issue(username string) (string, error) {
	nonce, err := util.RandomString(util.AlphanumericAlphabet, nonceLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token nonce")
	}

	now := time.Now()
	claims := service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			ID:        nonce,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify reports whether the token is correctly signed, from this issuer and
// not expired. All failure modes collapse to false.
func (s *jwtService) Verify(tokenString string) bool {
	return s.parse(tokenString) == nil
}

// VerifyFor is Verify plus a subject check against the given username.
func (s *jwtService) VerifyFor(tokenString, username string) bool {
	return s.parse(tokenString, jwt.WithSubject(username)) == nil
}

// parse validates the token against the service's secret and issuer.
func (s *jwtService) parse(tokenString string, opts ...jwt.ParserOption) error {
	opts = append(opts,
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)

	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, opts...)
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrTokenUnverifiable
	}

	return nil
}
