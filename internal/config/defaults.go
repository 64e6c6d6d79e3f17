// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied when no other source sets a field.
const (
	DefaultSecretLength   = 4
	DefaultXPGain         = 10
	DefaultPointsGain     = 10
	DefaultMaxImageBytes  = 5 << 20
	DefaultTokenIssuer    = "go-pocket-money"
	DefaultTokenDuration  = 24 * time.Hour
	DefaultHTTPAddress    = "localhost:8080"
	DefaultGRPCAddress    = "localhost:9090"
	DefaultRequestTimeout = 30 * time.Second
	DefaultDBDriver       = DriverSQLite
	DefaultDBDSN          = "file:pocket-money.db?_busy_timeout=5000"
	DefaultChatBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultPrimaryModel   = "gemini-2.0-flash-exp"
	DefaultFallbackModel  = "gemini-1.5-flash"
	DefaultChatTimeout    = 30 * time.Second
	DefaultVersion        = "dev"
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SecretLength:  DefaultSecretLength,
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			XPGain:        DefaultXPGain,
			PointsGain:    DefaultPointsGain,
			MaxImageBytes: DefaultMaxImageBytes,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			GRPCAddress:    DefaultGRPCAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Chat: Chat{
			// the vendor's conventional variable is honoured as a last resort
			APIKey:         os.Getenv("GOOGLE_API_KEY"),
			BaseURL:        DefaultChatBaseURL,
			PrimaryModel:   DefaultPrimaryModel,
			FallbackModel:  DefaultFallbackModel,
			RequestTimeout: DefaultChatTimeout,
		},
	}
}
