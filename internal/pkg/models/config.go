package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Tax      TaxConfig
	Admin    AdminConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the NSQ daemon address and notification topic
type NSQConfig struct {
	Address     string
	NotifyTopic string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig controls challenge length and expiry windows per purpose
type OTPConfig struct {
	Length             int
	ExpiryMinutes      int // self_registration and vendor_unlock
	AdminExpiryMinutes int // admin_approval challenges live longer
}

// TaxConfig contains the GST rate applied to budget subtotals
type TaxConfig struct {
	GSTRate float64 // fraction, e.g. 0.18 for 18%
}

// AdminConfig contains the bootstrap admin account and notification routing
type AdminConfig struct {
	Email         string
	Name          string
	Password      string
	RecipientRule string // "fixed" or "role-based"
}
