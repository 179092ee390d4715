package moysklad

// Config holds configuration for the MoySklad API connection.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://api.moysklad.ru/api/remap/1.2"`
	// Username and Password are the account credentials for the token handshake.
	Username string `mapstructure:"username" default:""`
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds every HTTP call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
