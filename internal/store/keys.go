package store

// Local storage keys.
const (
	KeyUserData          = "user_data"
	KeySessionInfo       = "session_info"
	KeyDeviceFingerprint = "device_fingerprint"
	KeySessionCookies    = "session_cookies"

	// KeyAuthToken is a legacy key. Nothing writes it anymore but logout
	// still removes it.
	KeyAuthToken = "auth_token"
)
