// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/aerovista/avweb/pkg/adapter/config"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/aircraftrp"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/inquiriesrp"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin/aircraftrs"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin/inquiriesrs"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/gin-gonic/gin"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections
// and transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries on
// them and accomplish those use cases. Each use case package is named
// like aircraftuc and each repository package is named like aircraftrp.
// Register instantiates a series of "resource" structs, from packages
// which are named like aircraftrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// The public endpoints are registered under /api/avweb/v1 and the
// admin endpoints are registered under /api/avweb/v1/admin, guarded by
// the bearer token authentication middleware.
// Possible errors will be returned after possible wrapping.
func Register(e *gin.Engine, p repo.Pool, c *config.Config) error {
	aircraftRepo := aircraftrp.New()
	inquiriesRepo := inquiriesrp.New()

	aircraftUseCase, err := c.NewAircraftUseCase(p, aircraftRepo)
	if err != nil {
		return fmt.Errorf("creating aircraft use case: %w", err)
	}
	inquiryUseCase, err := c.NewInquiryUseCase(p, inquiriesRepo)
	if err != nil {
		return fmt.Errorf("creating inquiries use case: %w", err)
	}
	auth, err := c.NewAuthMiddleware()
	if err != nil {
		return fmt.Errorf("creating auth middleware: %w", err)
	}

	r := e.Group("/api/avweb/v1")
	aircraftrs.Register(r, aircraftUseCase)
	inquiriesrs.Register(r, inquiryUseCase)

	admin := r.Group("/admin", auth)
	aircraftrs.RegisterAdmin(admin, aircraftUseCase)
	inquiriesrs.RegisterAdmin(admin, inquiryUseCase)
	return nil
}
