// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the avweb to instantiate different
// components, from the adapter or use cases layers, using those
// loaded configuration settings.
// The parsed and validated configurations are passed to their
// ultimate components as a series of individual params (for the
// mandatory items) and a series of functional options (for the
// optional items), so they may be accumulated and validated in the
// relevant end-component such as a UseCase instance. This design
// decision causes a bit of redundancy in favor of a defensive
// solution.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aerovista/avweb/pkg/adapter/config/settings"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres"
	"github.com/aerovista/avweb/pkg/adapter/hash/scram"
	"github.com/aerovista/avweb/pkg/adapter/limiter/memory"
	"github.com/aerovista/avweb/pkg/adapter/notify"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin/authmw"
	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/limiter"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/aerovista/avweb/pkg/core/usecase/aircraftuc"
	"github.com/aerovista/avweb/pkg/core/usecase/inquiryuc"
	"gopkg.in/yaml.v3"
)

// These constants define the major, minor, and patch version of the
// configuration settings which are supported by the Config struct.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Version is the semantic version of Config struct.
var Version = model.SemVer{Major, Minor, Patch}

// Default rate limiting policy for the inquiry submissions, applied
// when the configuration file leaves them unspecified.
const (
	DefaultRateLimitMaxRequests = 5
	DefaultRateLimitWindow      = 15 * time.Minute
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases. It is preferred to
// implement Config with primitive fields or other structs which are
// defined locally, not models or structs which are defined in lower
// layers, so the configuration can be versioned and kept intact while
// other layers can change freely.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Admin    Admin    // admin REST APIs authentication settings
	Usecases Usecases // Supported use cases configuration settings

	// Vers is the semantic version of this configuration file format.
	// Its major version must match with the Major constant and its
	// minor version may not exceed the Minor constant.
	Vers model.SemVer `yaml:"version"`
}

// Database contains the database related configuration settings.
type Database struct {
	Host     string // domain name or IP address of the DBMS server
	Port     int    // port number of the DBMS server
	Name     string // database name, like avweb1_0_0
	User     string // database role name
	Password string // database role password
}

// URL returns the PostgreSQL connection URL of the d settings.
func (d Database) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.Host + ":" + strconv.Itoa(d.Port),
		Path:   "/" + d.Name,
	}
	return u.String()
}

// Gin contains the gin-gonic instantiation settings.
type Gin struct {
	// Logger indicates if the gin.Logger() middleware is desired.
	Logger *bool
	// Recovery indicates if the gin.Recovery() middleware is desired.
	Recovery *bool
}

// Admin contains the admin REST APIs authentication settings.
// The token itself is never configured; its scram hash string is.
type Admin struct {
	// TokenHash holds the scram hash string of the admin API bearer
	// token, as produced by the `avweb admin hash-token` command.
	TokenHash string `yaml:"token-hash"`
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Aircraft  Aircraft  // aircraft use cases related settings
	Inquiries Inquiries // inquiries use cases related settings
}

// Aircraft contains the configuration settings for the aircraft use
// cases. Fields are defined as pointers, so it is possible to detect
// if they are or are not initialized and let the use cases layer
// apply its own defaults for the missing ones.
type Aircraft struct {
	// SimilarLimit indicates how many similar listings should be
	// recommended by default.
	SimilarLimit *int `yaml:"similar-limit"`
}

// Inquiries contains the configuration settings for the inquiries use
// cases.
type Inquiries struct {
	// RateLimit specifies the inquiry submission rate limit policy.
	RateLimit RateLimit `yaml:"rate-limit"`
}

// RateLimit specifies a fixed-window rate limit policy.
type RateLimit struct {
	// MaxRequests is the number of requests which one client may
	// submit within each window.
	MaxRequests *int `yaml:"max-requests"`
	// Window is the fixed window length.
	Window *settings.Duration
}

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// Given path must belong to a configuration file which conforms with
// the known configuration settings format version.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and
// returns an error if they were not acceptable. It can also modify
// settings in order to normalize them or replace some zero values
// with their expected default values (if any).
func (c *Config) ValidateAndNormalize() error {
	if c.Vers[0] != Major || c.Vers[1] > Minor {
		return fmt.Errorf(
			"unsupported config version: %w",
			&cerr.MismatchingSemVerError{Version, c.Vers},
		)
	}
	enabled := true
	settings.OverwriteNil(&c.Gin.Logger, &enabled)
	settings.OverwriteNil(&c.Gin.Recovery, &enabled)
	switch {
	case c.Database.Host == "":
		return fmt.Errorf("missing database host")
	case c.Database.Port <= 0 || c.Database.Port > 65535:
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	case c.Database.Name == "":
		return fmt.Errorf("missing database name")
	case c.Database.User == "":
		return fmt.Errorf("missing database user")
	}
	one := 1
	r := &c.Usecases.Inquiries.RateLimit
	if err := settings.VerifyRange(&r.MaxRequests, &one, nil); err != nil {
		return fmt.Errorf("rate limit max-requests: %w", err)
	}
	minWindow := settings.Duration(time.Second)
	if err := settings.VerifyRange(&r.Window, &minWindow, nil); err != nil {
		return fmt.Errorf("rate limit window: %w", err)
	}
	sl := &c.Usecases.Aircraft.SimilarLimit
	if err := settings.VerifyRange(sl, &one, nil); err != nil {
		return fmt.Errorf("similar-limit: %w", err)
	}
	return nil
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the c settings.
func (c *Config) ConnectionPool(ctx context.Context) (*postgres.Pool, error) {
	p, err := postgres.NewPool(ctx, c.Database.URL())
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return p, nil
}

// NewEngine instantiates a gin engine with the configured middlewares.
func (c *Config) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *c.Gin.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *c.Gin.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	return gin.New(middlewares...)
}

// NewAuthMiddleware instantiates the admin authentication middleware
// based on the configured admin token hash.
func (c *Config) NewAuthMiddleware() (gin.HandlerFunc, error) {
	if c.Admin.TokenHash == "" {
		return nil, fmt.Errorf("missing admin token-hash")
	}
	return authmw.New(scram.SHA256(), c.Admin.TokenHash)
}

// NewAircraftUseCase instantiates a new aircraft use case based on
// the settings in the c struct.
func (c *Config) NewAircraftUseCase(
	p repo.Pool, r repo.Aircraft,
) (*aircraftuc.UseCase, error) {
	opts := make([]aircraftuc.Option, 0, 1)
	if sl := c.Usecases.Aircraft.SimilarLimit; sl != nil {
		opts = append(opts, aircraftuc.WithSimilarLimit(*sl))
	}
	return aircraftuc.New(p, r, opts...)
}

// NewInquiryUseCase instantiates a new inquiries use case based on
// the settings in the c struct, using an in-memory rate limit counter
// store and the log-backed notifier.
func (c *Config) NewInquiryUseCase(
	p repo.Pool, r repo.Inquiries,
) (*inquiryuc.UseCase, error) {
	maxRequests := DefaultRateLimitMaxRequests
	if m := c.Usecases.Inquiries.RateLimit.MaxRequests; m != nil {
		maxRequests = *m
	}
	window := DefaultRateLimitWindow
	if w := c.Usecases.Inquiries.RateLimit.Window; w != nil {
		window = time.Duration(*w)
	}
	l, err := limiter.New(memory.New(), maxRequests, window)
	if err != nil {
		return nil, fmt.Errorf("creating rate limiter: %w", err)
	}
	return inquiryuc.New(p, r, l, notify.New())
}
