package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrInvalidToken возвращается, когда токен повреждён или подписан другим ключом
	ErrInvalidToken = errors.New("auth: invalid session token")

	// ErrTokenExpired возвращается, когда срок действия сессии истёк
	ErrTokenExpired = errors.New("auth: session expired")
)
