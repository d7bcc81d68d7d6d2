package logger

import (
	"time"

	"github.com/piresc/easybank/internal/pkg/models"
	"go.uber.org/zap"
)

// Field keeps callers from importing zap directly
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 constructs a field that carries an int64 value
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// CustomerID constructs the field naming the customer a log line is about
func CustomerID(id int64) Field {
	return zap.Int64("customer_id", id)
}

// Principal constructs a single object field for an authenticated principal
func Principal(ref models.PrincipalRef) Field {
	return zap.Dict("principal",
		zap.String("type", string(ref.Kind)),
		zap.Int64("id", ref.ID))
}
