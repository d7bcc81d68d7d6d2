package constants

// Redis key formats
const (
	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{client}
)

// Rate limited route groups
const (
	RateLimitLogin      = "login"
	RateLimitAdminLogin = "admin_login"
	RateLimitOTP        = "otp"
)
