// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftrs

import (
	"net/http"
	"strings"
	"time"

	"github.com/aerovista/avweb/pkg/adapter/restful/gin/serdser"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/usecase/aircraftuc"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type rawListReq struct {
	Search     string   `form:"search" binding:"omitempty,max=200"`
	Categories []string `form:"category" binding:"omitempty"`
	Statuses   []string `form:"status" binding:"omitempty"`
	MinPrice   *float64 `form:"min-price" binding:"omitempty,gte=0"`
	MaxPrice   *float64 `form:"max-price" binding:"omitempty,gte=0"`
	MinYear    *int     `form:"min-year" binding:"omitempty,gte=1900"`
	MaxYear    *int     `form:"max-year" binding:"omitempty,gte=1900"`
	Sort       string   `form:"sort" binding:"omitempty,oneof=newest price-asc price-desc year-desc year-asc"`
	Page       int      `form:"page" binding:"omitempty,gte=1"`
}

type listReq struct {
	Filter model.FilterState
	Page   int
}

// DserListReq deserializes the listing query parameters into a filter
// state and page index. The category and status parameters may repeat
// and may also carry comma-separated sets.
func (rs *resource) DserListReq(c *gin.Context) *listReq {
	req := &rawListReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	val := &listReq{Page: req.Page}
	if val.Page == 0 {
		val.Page = 1
	}
	val.Filter = model.FilterState{
		Search:   req.Search,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		MinYear:  req.MinYear,
		MaxYear:  req.MaxYear,
	}
	var errs map[string][]string
	for _, raw := range splitSet(req.Categories) {
		category, err := model.ParseCategory(raw)
		if !serdser.Assert(
			&errs, err == nil, "category",
			"Unknown category: "+raw,
		) {
			continue
		}
		val.Filter.Categories = append(val.Filter.Categories, category)
	}
	for _, raw := range splitSet(req.Statuses) {
		status, err := model.ParseStatus(raw)
		if !serdser.Assert(
			&errs, err == nil, "status", "Unknown status: "+raw,
		) {
			continue
		}
		val.Filter.Statuses = append(val.Filter.Statuses, status)
	}
	if req.Sort != "" {
		sort, err := model.ParseSortBy(req.Sort)
		serdser.Assert(&errs, err == nil, "sort", "Unknown sort key.")
		val.Filter.Sort = sort
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return val
}

// splitSet flattens repeated query parameters, splitting each one on
// commas and dropping empty items.
func splitSet(params []string) []string {
	var items []string
	for _, param := range params {
		for _, item := range strings.Split(param, ",") {
			if item = strings.TrimSpace(item); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

type rawSimilarReq struct {
	Limit int `form:"limit" binding:"omitempty,gte=1,lte=24"`
}

type similarReq struct {
	Slug  string
	Limit int
}

// DserSimilarReq deserializes the similar listings request. A zero
// limit selects the configured default.
func (rs *resource) DserSimilarReq(c *gin.Context) *similarReq {
	req := &rawSimilarReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	return &similarReq{
		Slug:  c.Param("slug"),
		Limit: req.Limit,
	}
}

type rawAircraftReq struct {
	Title        string `json:"title" binding:"required,max=200"`
	Slug         string `json:"slug" binding:"required,max=160,lowercase"`
	Status       string `json:"status" binding:"required,oneof=available pending sold draft"`
	Category     string `json:"category" binding:"required,oneof=jet turboprop helicopter piston trailer"`
	Manufacturer string `json:"manufacturer" binding:"required,max=100"`
	Model        string `json:"model" binding:"required,max=100"`

	YearManufactured   int     `json:"year_manufactured" binding:"required,gte=1900"`
	RegistrationNumber *string `json:"registration_number" binding:"omitempty,max=20"`
	SerialNumber       *string `json:"serial_number" binding:"omitempty,max=50"`
	AircraftType       *string `json:"aircraft_type" binding:"omitempty,max=50"`

	TotalTimeHours     *float64 `json:"total_time_hours" binding:"omitempty,gte=0"`
	Engines            *int     `json:"engines" binding:"omitempty,gte=0"`
	PassengersCapacity *int     `json:"passengers_capacity" binding:"omitempty,gte=0"`
	MaxRangeNM         *int     `json:"max_range_nm" binding:"omitempty,gte=0"`
	MaxSpeedKts        *int     `json:"max_speed_kts" binding:"omitempty,gte=0"`
	CruiseSpeedKts     *int     `json:"cruise_speed_kts" binding:"omitempty,gte=0"`
	MaxAltitudeFt      *int     `json:"max_altitude_ft" binding:"omitempty,gte=0"`

	Price             *float64 `json:"price" binding:"omitempty,gte=0"`
	PriceCurrency     string   `json:"price_currency" binding:"omitempty,len=3"`
	IsPriceNegotiable bool     `json:"is_price_negotiable"`

	Description     *string  `json:"description"`
	Features        []string `json:"features" binding:"omitempty,dive,max=100"`
	PrimaryImageURL *string  `json:"primary_image_url" binding:"omitempty,url"`

	MetaTitle       *string `json:"meta_title" binding:"omitempty,max=200"`
	MetaDescription *string `json:"meta_description" binding:"omitempty,max=300"`

	Featured bool `json:"featured"`
}

// DserCreateReq deserializes a complete listing creation request into
// a business-level record.
func (rs *resource) DserCreateReq(c *gin.Context) *model.Aircraft {
	req := &rawAircraftReq{}
	if ok := serdser.Bind(c, req, binding.JSON); !ok {
		return nil
	}
	var errs map[string][]string
	status, err := model.ParseStatus(req.Status)
	serdser.Assert(&errs, err == nil, "status", "Unknown status.")
	category, err := model.ParseCategory(req.Category)
	serdser.Assert(&errs, err == nil, "category", "Unknown category.")
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	currency := req.PriceCurrency
	if currency == "" {
		currency = "USD"
	}
	features := req.Features
	if features == nil {
		features = []string{}
	}
	return &model.Aircraft{
		Slug:               req.Slug,
		Title:              req.Title,
		Status:             status,
		Category:           category,
		Manufacturer:       req.Manufacturer,
		Model:              req.Model,
		YearManufactured:   req.YearManufactured,
		RegistrationNumber: req.RegistrationNumber,
		SerialNumber:       req.SerialNumber,
		AircraftType:       req.AircraftType,
		TotalTimeHours:     req.TotalTimeHours,
		Engines:            req.Engines,
		PassengersCapacity: req.PassengersCapacity,
		MaxRangeNM:         req.MaxRangeNM,
		MaxSpeedKts:        req.MaxSpeedKts,
		CruiseSpeedKts:     req.CruiseSpeedKts,
		MaxAltitudeFt:      req.MaxAltitudeFt,
		Price:              req.Price,
		PriceCurrency:      currency,
		IsPriceNegotiable:  req.IsPriceNegotiable,
		Description:        req.Description,
		Features:           features,
		PrimaryImageURL:    req.PrimaryImageURL,
		MetaTitle:          req.MetaTitle,
		MetaDescription:    req.MetaDescription,
		Featured:           req.Featured,
	}
}

type updateReq struct {
	AID   uuid.UUID
	Patch *model.AircraftPatch
}

// DserUpdateReq deserializes a partial update request. The request
// body is inspected field by field, so an absent field, a null field,
// and a field with a value can be told apart: absent fields are left
// unchanged and null fields clear their optional attribute.
func (rs *resource) DserUpdateReq(c *gin.Context) *updateReq {
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, errs)
		}
	}()
	aid, err := uuid.Parse(c.Param("aid"))
	if err != nil {
		serdser.AddErr(&errs, "aid", "Path param aid is not UUID.")
		return nil
	}
	data, err := c.GetRawData()
	if err != nil {
		serdser.AddErr(&errs, "body", err.Error())
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		serdser.AddErr(&errs, "body", "Malformed JSON object.")
		return nil
	}
	patch := &model.AircraftPatch{}
	for name, raw := range fields {
		dserPatchField(&errs, patch, name, raw)
	}
	if errs != nil {
		return nil
	}
	return &updateReq{AID: aid, Patch: patch}
}

// dserPatchField applies one request body field to the patch,
// recording an error for unknown names and malformed values.
func dserPatchField(
	errs *map[string][]string,
	patch *model.AircraftPatch,
	name string,
	raw json.RawMessage,
) {
	switch name {
	case "title":
		patch.Title = dserValue[string](errs, name, raw)
	case "slug":
		patch.Slug = dserValue[string](errs, name, raw)
	case "status":
		if s := dserValue[string](errs, name, raw); s != nil {
			status, err := model.ParseStatus(*s)
			if serdser.Assert(errs, err == nil, name, "Unknown status.") {
				patch.Status = &status
			}
		}
	case "category":
		if s := dserValue[string](errs, name, raw); s != nil {
			category, err := model.ParseCategory(*s)
			if serdser.Assert(errs, err == nil, name, "Unknown category.") {
				patch.Category = &category
			}
		}
	case "manufacturer":
		patch.Manufacturer = dserValue[string](errs, name, raw)
	case "model":
		patch.Model = dserValue[string](errs, name, raw)
	case "year_manufactured":
		patch.YearManufactured = dserValue[int](errs, name, raw)
	case "registration_number":
		patch.RegistrationNumber = dserNullable[string](errs, name, raw)
	case "serial_number":
		patch.SerialNumber = dserNullable[string](errs, name, raw)
	case "aircraft_type":
		patch.AircraftType = dserNullable[string](errs, name, raw)
	case "total_time_hours":
		patch.TotalTimeHours = dserNullable[float64](errs, name, raw)
	case "engines":
		patch.Engines = dserNullable[int](errs, name, raw)
	case "passengers_capacity":
		patch.PassengersCapacity = dserNullable[int](errs, name, raw)
	case "max_range_nm":
		patch.MaxRangeNM = dserNullable[int](errs, name, raw)
	case "max_speed_kts":
		patch.MaxSpeedKts = dserNullable[int](errs, name, raw)
	case "cruise_speed_kts":
		patch.CruiseSpeedKts = dserNullable[int](errs, name, raw)
	case "max_altitude_ft":
		patch.MaxAltitudeFt = dserNullable[int](errs, name, raw)
	case "price":
		patch.Price = dserNullable[float64](errs, name, raw)
	case "price_currency":
		patch.PriceCurrency = dserValue[string](errs, name, raw)
	case "is_price_negotiable":
		patch.IsPriceNegotiable = dserValue[bool](errs, name, raw)
	case "description":
		patch.Description = dserNullable[string](errs, name, raw)
	case "features":
		patch.Features = dserValue[[]string](errs, name, raw)
	case "primary_image_url":
		patch.PrimaryImageURL = dserNullable[string](errs, name, raw)
	case "meta_title":
		patch.MetaTitle = dserNullable[string](errs, name, raw)
	case "meta_description":
		patch.MetaDescription = dserNullable[string](errs, name, raw)
	case "featured":
		patch.Featured = dserValue[bool](errs, name, raw)
	default:
		serdser.AddErr(errs, name, "Unknown field.")
	}
}

// dserValue deserializes a non-nullable field value.
func dserValue[T any](errs *map[string][]string, name string, raw json.RawMessage) *T {
	if string(raw) == "null" {
		serdser.AddErr(errs, name, "May not be null.")
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		serdser.AddErr(errs, name, "Malformed value.")
		return nil
	}
	return &v
}

// dserNullable deserializes a nullable field value, mapping an
// explicit null onto a clearing patch entry.
func dserNullable[T any](errs *map[string][]string, name string, raw json.RawMessage) **T {
	if string(raw) == "null" {
		var cleared *T
		return &cleared
	}
	v := dserValue[T](errs, name, raw)
	if v == nil {
		return nil
	}
	return &v
}

type rawDeleteReq struct {
	Hard bool `form:"hard" binding:"omitempty"`
}

type deleteReq struct {
	AID  uuid.UUID
	Hard bool
}

// DserDeleteReq deserializes a listing removal request, which is soft
// unless the hard=true query parameter is given.
func (rs *resource) DserDeleteReq(c *gin.Context) *deleteReq {
	req := &rawDeleteReq{}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil
	}
	aid, err := uuid.Parse(c.Param("aid"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "aid", "Path param aid is not UUID.")
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return &deleteReq{AID: aid, Hard: req.Hard}
}

// AircraftResp is the serialized form of one listing.
type AircraftResp struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`

	Title        string         `json:"title"`
	Status       model.Status   `json:"status"`
	Category     model.Category `json:"category"`
	Manufacturer string         `json:"manufacturer"`
	Model        string         `json:"model"`

	YearManufactured   int     `json:"year_manufactured"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
	SerialNumber       *string `json:"serial_number,omitempty"`
	AircraftType       *string `json:"aircraft_type,omitempty"`

	TotalTimeHours     *float64 `json:"total_time_hours,omitempty"`
	Engines            *int     `json:"engines,omitempty"`
	PassengersCapacity *int     `json:"passengers_capacity,omitempty"`
	MaxRangeNM         *int     `json:"max_range_nm,omitempty"`
	MaxSpeedKts        *int     `json:"max_speed_kts,omitempty"`
	CruiseSpeedKts     *int     `json:"cruise_speed_kts,omitempty"`
	MaxAltitudeFt      *int     `json:"max_altitude_ft,omitempty"`

	Price             *float64 `json:"price,omitempty"`
	PriceCurrency     string   `json:"price_currency"`
	IsPriceNegotiable bool     `json:"is_price_negotiable"`

	Description     *string  `json:"description,omitempty"`
	Features        []string `json:"features"`
	PrimaryImageURL *string  `json:"primary_image_url,omitempty"`

	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`

	Featured  bool `json:"featured"`
	ViewCount int  `json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SerAircraft serializes the a record.
func SerAircraft(a *model.Aircraft) *AircraftResp {
	features := a.Features
	if features == nil {
		features = []string{}
	}
	return &AircraftResp{
		ID:                 a.ID,
		Slug:               a.Slug,
		Title:              a.Title,
		Status:             a.Status,
		Category:           a.Category,
		Manufacturer:       a.Manufacturer,
		Model:              a.Model,
		YearManufactured:   a.YearManufactured,
		RegistrationNumber: a.RegistrationNumber,
		SerialNumber:       a.SerialNumber,
		AircraftType:       a.AircraftType,
		TotalTimeHours:     a.TotalTimeHours,
		Engines:            a.Engines,
		PassengersCapacity: a.PassengersCapacity,
		MaxRangeNM:         a.MaxRangeNM,
		MaxSpeedKts:        a.MaxSpeedKts,
		CruiseSpeedKts:     a.CruiseSpeedKts,
		MaxAltitudeFt:      a.MaxAltitudeFt,
		Price:              a.Price,
		PriceCurrency:      a.PriceCurrency,
		IsPriceNegotiable:  a.IsPriceNegotiable,
		Description:        a.Description,
		Features:           features,
		PrimaryImageURL:    a.PrimaryImageURL,
		MetaTitle:          a.MetaTitle,
		MetaDescription:    a.MetaDescription,
		Featured:           a.Featured,
		ViewCount:          a.ViewCount,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// ListingPageResp is the serialized form of one listing page.
type ListingPageResp struct {
	Items []AircraftResp `json:"items"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Pages int            `json:"pages"`
}

// SerListingPage serializes the lp listing page.
func SerListingPage(lp *aircraftuc.ListingPage) *ListingPageResp {
	items := make([]AircraftResp, len(lp.Items))
	for n := range lp.Items {
		items[n] = *SerAircraft(&lp.Items[n])
	}
	return &ListingPageResp{
		Items: items,
		Total: lp.Total,
		Page:  lp.Page,
		Pages: lp.Pages,
	}
}
