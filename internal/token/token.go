// Package token реализует выпуск и проверку подписанных токенов доступа.
//
// Выпуск и проверка используют общий симметричный секрет (HS256). Токены
// нигде не сохраняются: срок действия проверяется заново при каждом запросе.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL определяет срок действия выпущенного токена.
const TTL = time.Hour

// ErrNoSecret возвращается конструкторами при пустом секрете подписи.
var (
	ErrNoSecret = errors.New("empty signing secret")
	// ErrMissingToken возвращается, если токен не передан.
	ErrMissingToken = errors.New("token not provided")
	// ErrMalformedToken возвращается, если строку не удалось разобрать как токен.
	ErrMalformedToken = errors.New("malformed token")
	// ErrBadSignature возвращается, если подпись токена не прошла проверку.
	ErrBadSignature = errors.New("invalid token signature")
	// ErrExpired возвращается, если срок действия токена истёк.
	ErrExpired = errors.New("token expired")
	// ErrNotYetValid возвращается, если токен предъявлен раньше момента выпуска.
	ErrNotYetValid = errors.New("token not yet valid")
)

// Claims описывает полезную нагрузку токена доступа.
type Claims struct {
	Name        string `json:"name"`
	DateRequest string `json:"date_request"`
	jwt.RegisteredClaims
}

// Issuer выпускает подписанные токены доступа.
type Issuer struct {
	secret []byte
}

// NewIssuer создаёт эмитент токенов с указанным секретом подписи.
func NewIssuer(secret string) (*Issuer, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Issue выпускает токен для указанного имени и даты запроса.
// Возвращает строку токена и unix-время истечения срока действия.
func (i *Issuer) Issue(name, dateRequest string) (string, int64, error) {
	now := time.Now()
	exp := now.Add(TTL)

	claims := &Claims{
		Name:        name,
		DateRequest: dateRequest,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(i.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}

	return signed, exp.Unix(), nil
}

// Validator проверяет подпись и срок действия токенов доступа.
type Validator struct {
	secret []byte
}

// NewValidator создаёт валидатор токенов с указанным секретом подписи.
// Секрет обязан байтово совпадать с секретом эмитента.
func NewValidator(secret string) (*Validator, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Validator{secret: []byte(secret)}, nil
}

// Validate разбирает строку токена, проверяет подпись и временные границы
// и возвращает полезную нагрузку. Отказы различаются сентинельными ошибками
// пакета. Момент времени фиксируется один раз на весь вызов, чтобы проверки
// iat и exp сравнивались с одними и теми же часами.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := time.Now()

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
			return nil, ErrNotYetValid
		default:
			return nil, ErrMalformedToken
		}
	}

	if !parsed.Valid {
		return nil, ErrBadSignature
	}

	return claims, nil
}
