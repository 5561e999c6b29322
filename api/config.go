package api

// Config for api configuration variables.
type Config struct {
	EnableCORS bool
	Listen     string
	// SessionCookie is the cookie visitor session id is read from and written to
	SessionCookie string
}
