// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package inquiriesrs realizes the inquiries resource, adapting the
// public inquiry submission REST API and the admin inquiry handling
// REST APIs to the inquiries use cases.
package inquiriesrs

import (
	"net/http"

	"github.com/aerovista/avweb/pkg/adapter/restful/gin/serdser"
	"github.com/aerovista/avweb/pkg/core/limiter"
	"github.com/aerovista/avweb/pkg/core/usecase/inquiryuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	inquiries *inquiryuc.UseCase
}

// Register instantiates a resource adapting the inquiries use case
// instance with the public REST APIs including:
//  1. POST request to /api/avweb/v1/inquiries
//     in order to submit an inquiry, subject to the per-client rate
//     limit which is reported by the X-RateLimit-* response headers.
func Register(r *gin.RouterGroup, inquiries *inquiryuc.UseCase) {
	rs := &resource{inquiries: inquiries}
	r.POST("inquiries", rs.SubmitInquiry)
}

// RegisterAdmin instantiates a resource adapting the inquiries use
// case instance with the admin REST APIs including:
//  1. GET request to /api/avweb/v1/admin/inquiries
//     in order to list all inquiries, newest first,
//  2. PATCH request to /api/avweb/v1/admin/inquiries/:iid
//     in order to update the handling status, priority, or notes of
//     an inquiry.
func RegisterAdmin(r *gin.RouterGroup, inquiries *inquiryuc.UseCase) {
	rs := &resource{inquiries: inquiries}
	r.GET("inquiries", rs.ListInquiries)
	r.PATCH("inquiries/:iid", rs.UpdateInquiry)
}

func (rs *resource) SubmitInquiry(c *gin.Context) {
	sub := rs.DserSubmitReq(c)
	if sub == nil {
		return
	}
	created, rl, err := rs.inquiries.Submit(c, *sub)
	setRateLimitHeaders(c, rl)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, SerInquiry(created))
}

// setRateLimitHeaders reports the rate limit state on every
// submission response, allowed or rejected alike.
func setRateLimitHeaders(c *gin.Context, rl limiter.Result) {
	c.Header("X-RateLimit-Limit", itoa(rl.Limit))
	c.Header("X-RateLimit-Remaining", itoa(rl.Remaining))
	c.Header("X-RateLimit-Reset", itoa(int(rl.Reset.Unix())))
}

func (rs *resource) ListInquiries(c *gin.Context) {
	all, err := rs.inquiries.List(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	items := make([]InquiryResp, len(all))
	for n := range all {
		items[n] = *SerInquiry(&all[n])
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (rs *resource) UpdateInquiry(c *gin.Context) {
	req := rs.DserUpdateReq(c)
	if req == nil {
		return
	}
	updated, err := rs.inquiries.Update(c, req.IID, req.Patch)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, SerInquiry(updated))
}
