package constants

// Session / context keys
const (
	ContextKeyUserID  = "user_id"
	SessionKeyLocale  = "locale"
	SessionCookieName = "hr_session"
)

// Password rules
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultLocation is recorded when a check-in or check-out carries no location.
const DefaultLocation = "Unknown"

// Supported locales; DefaultLocale applies when the session carries none.
const (
	LocaleVietnamese = "vi"
	LocaleEnglish    = "en"
	DefaultLocale    = LocaleVietnamese
)

// BirthdayWindowMonths is the forward-looking window for upcoming birthdays.
const BirthdayWindowMonths = 3
