package banking

import "errors"

var (
	// ErrDuplicateEmail is returned when a write hits the unique email index
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateAccountNumber is returned when a generated account number is taken
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	// ErrTokenRevoked is returned for authentic tokens whose record is no longer valid
	ErrTokenRevoked = errors.New("token revoked")
	// ErrWrongTokenUse is returned when a refresh token is presented as an access token
	ErrWrongTokenUse = errors.New("token cannot be used for this request")
)
