// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package aircraftrs realizes the aircraft resource, adapting the
// public listing REST APIs and the admin inventory management REST
// APIs to the aircraft use cases.
package aircraftrs

import (
	"fmt"
	"net/http"

	"github.com/aerovista/avweb/pkg/adapter/restful/gin/serdser"
	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/usecase/aircraftuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	aircraft *aircraftuc.UseCase
}

// Register instantiates a resource adapting the aircraft use case
// instance with the public REST APIs including:
//  1. GET request to /api/avweb/v1/aircraft
//     in order to browse the filtered, sorted, paginated inventory,
//  2. GET request to /api/avweb/v1/aircraft/:slug
//     in order to view one listing,
//  3. GET request to /api/avweb/v1/aircraft/:slug/similar
//     in order to fetch similar listing recommendations.
func Register(r *gin.RouterGroup, aircraft *aircraftuc.UseCase) {
	rs := &resource{aircraft: aircraft}
	r.GET("aircraft", rs.ListAircraft)
	r.GET("aircraft/:slug", rs.GetAircraft)
	r.GET("aircraft/:slug/similar", rs.SimilarAircraft)
}

// RegisterAdmin instantiates a resource adapting the aircraft use
// case instance with the admin REST APIs including:
//  1. POST request to /api/avweb/v1/admin/aircraft
//     in order to create a listing,
//  2. PATCH request to /api/avweb/v1/admin/aircraft/:aid
//     in order to partially update a listing,
//  3. DELETE request to /api/avweb/v1/admin/aircraft/:aid
//     in order to remove a listing (softly unless hard=true).
func RegisterAdmin(r *gin.RouterGroup, aircraft *aircraftuc.UseCase) {
	rs := &resource{aircraft: aircraft}
	r.POST("aircraft", rs.CreateAircraft)
	r.PATCH("aircraft/:aid", rs.UpdateAircraft)
	r.DELETE("aircraft/:aid", rs.DeleteAircraft)
}

func (rs *resource) ListAircraft(c *gin.Context) {
	req := rs.DserListReq(c)
	if req == nil {
		return
	}
	lp, err := rs.aircraft.List(c, req.Filter, req.Page)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerListingPage(lp))
}

func (rs *resource) GetAircraft(c *gin.Context) {
	slug := c.Param("slug")
	a, err := rs.aircraft.BySlug(c, slug)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	// drafts are a dashboard-only concern, the public API hides them
	if a.Status == model.StatusDraft {
		serdser.SerErr(c, cerr.NotFound(
			fmt.Errorf("no aircraft with slug %q", slug),
		))
		return
	}
	c.JSON(http.StatusOK, SerAircraft(a))
}

func (rs *resource) SimilarAircraft(c *gin.Context) {
	req := rs.DserSimilarReq(c)
	if req == nil {
		return
	}
	similar, err := rs.aircraft.Similar(c, req.Slug, req.Limit)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	items := make([]AircraftResp, len(similar))
	for n := range similar {
		items[n] = *SerAircraft(&similar[n])
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (rs *resource) CreateAircraft(c *gin.Context) {
	a := rs.DserCreateReq(c)
	if a == nil {
		return
	}
	created, err := rs.aircraft.Create(c, a)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerAircraft(created))
}

func (rs *resource) UpdateAircraft(c *gin.Context) {
	req := rs.DserUpdateReq(c)
	if req == nil {
		return
	}
	updated, err := rs.aircraft.Update(c, req.AID, req.Patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerAircraft(updated))
}

func (rs *resource) DeleteAircraft(c *gin.Context) {
	req := rs.DserDeleteReq(c)
	if req == nil {
		return
	}
	err := rs.aircraft.Delete(c, req.AID, req.Hard)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
