package redis

import "time"

// DatabaseConfig - Redis database connection config
type DatabaseConfig struct {
	MasterName   string
	Addrs        []string
	Username     string
	Password     string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxRetries   int
}
