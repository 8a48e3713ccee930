// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package inquiriesrs

import (
	"net/http"
	"strconv"
	"time"

	"github.com/aerovista/avweb/pkg/adapter/restful/gin/serdser"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/usecase/inquiryuc"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

type rawSubmitReq struct {
	FullName    string  `json:"full_name" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email,max=254"`
	Phone       *string `json:"phone" binding:"omitempty,max=32"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=100"`

	Type       string  `json:"type" binding:"required,oneof=aircraft financing general partnership"`
	AircraftID *string `json:"aircraft_id" binding:"omitempty,uuid"`
	Subject    string  `json:"subject" binding:"required,max=200"`
	Message    string  `json:"message" binding:"required,max=5000"`

	Source *string `json:"source" binding:"omitempty,max=100"`
}

// DserSubmitReq deserializes an inquiry submission request. The
// client identification fields (IP address and user agent) are taken
// from the request itself, never from the body.
func (rs *resource) DserSubmitReq(c *gin.Context) *inquiryuc.Submission {
	req := &rawSubmitReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	itype, err := model.ParseInquiryType(req.Type)
	if !serdser.Assert(
		&errs, err == nil, "type", "Unknown inquiry type.",
	) {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	sub := &inquiryuc.Submission{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		CompanyName: req.CompanyName,
		Type:        itype,
		Subject:     req.Subject,
		Message:     req.Message,
		Source:      req.Source,
		IPAddress:   c.ClientIP(),
	}
	if req.AircraftID != nil {
		aid, err := uuid.Parse(*req.AircraftID)
		if !serdser.Assert(
			&errs, err == nil, "aircraft_id", "Not a UUID.",
		) {
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		sub.AircraftID = &aid
	}
	if ua := c.Request.UserAgent(); ua != "" {
		sub.UserAgent = &ua
	}
	return sub
}

type rawUpdateReq struct {
	Status     *string `json:"status" binding:"omitempty,oneof=new in_progress responded closed spam"`
	Priority   *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	AdminNotes *string `json:"admin_notes" binding:"omitempty,max=5000"`
}

type updateReq struct {
	IID   uuid.UUID
	Patch *model.InquiryPatch
}

// DserUpdateReq deserializes an admin inquiry update request.
func (rs *resource) DserUpdateReq(c *gin.Context) *updateReq {
	req := &rawUpdateReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	iid, err := uuid.Parse(c.Param("iid"))
	if err != nil {
		serdser.AddErr(&errs, "iid", "Path param iid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	patch := &model.InquiryPatch{AdminNotes: req.AdminNotes}
	if req.Status != nil {
		status, err := model.ParseInquiryStatus(*req.Status)
		if !serdser.Assert(
			&errs, err == nil, "status", "Unknown status.",
		) {
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		patch.Status = &status
	}
	if req.Priority != nil {
		priority, err := model.ParsePriority(*req.Priority)
		if !serdser.Assert(
			&errs, err == nil, "priority", "Unknown priority.",
		) {
			c.JSON(http.StatusBadRequest, errs)
			return nil
		}
		patch.Priority = &priority
	}
	return &updateReq{IID: iid, Patch: patch}
}

// InquiryResp is the serialized form of one inquiry.
type InquiryResp struct {
	ID uuid.UUID `json:"id"`

	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	CompanyName *string `json:"company_name,omitempty"`

	Type       model.InquiryType `json:"type"`
	AircraftID *uuid.UUID        `json:"aircraft_id,omitempty"`
	Subject    string            `json:"subject"`
	Message    string            `json:"message"`

	Status   model.InquiryStatus `json:"status"`
	Priority model.Priority      `json:"priority"`

	Source     *string `json:"source,omitempty"`
	AdminNotes *string `json:"admin_notes,omitempty"`

	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// SerInquiry serializes the i inquiry. The client identification
// fields (IP address and user agent) stay internal.
func SerInquiry(i *model.Inquiry) *InquiryResp {
	return &InquiryResp{
		ID:          i.ID,
		FullName:    i.FullName,
		Email:       i.Email,
		Phone:       i.Phone,
		CompanyName: i.CompanyName,
		Type:        i.Type,
		AircraftID:  i.AircraftID,
		Subject:     i.Subject,
		Message:     i.Message,
		Status:      i.Status,
		Priority:    i.Priority,
		Source:      i.Source,
		AdminNotes:  i.AdminNotes,
		RespondedAt: i.RespondedAt,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
