// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aerovista/avweb/internal/test/dbcontainer"
	"github.com/aerovista/avweb/pkg/adapter/config"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/aircraftrp"
	"github.com/aerovista/avweb/pkg/adapter/db/postgres/schema"
	"github.com/aerovista/avweb/pkg/adapter/hash/scram"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin"
	"github.com/aerovista/avweb/pkg/adapter/restful/gin/routes"
	"github.com/aerovista/avweb/pkg/core/model"
	"github.com/aerovista/avweb/pkg/core/repo"
	"github.com/bitcomplete/sqltestutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const (
	adminToken   = "test-admin-token"
	rateLimitMax = 3
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx      context.Context
	Pg       *sqltestutil.PostgresContainer
	Pool     *postgres.Pool
	Gin      *gin.Engine
	Aircraft *aircraftrp.Repo
}

func TestIntegrationGinTestSuite(t *testing.T) {
	ctx := context.Background()
	pg, pool, dfrs, ok := dbcontainer.New(ctx, 60*time.Second, t)
	for _, f := range dfrs {
		defer f()
	}
	if !ok {
		return // errors are already logged
	}
	suite.Run(t, &IntegrationGinTestSuite{
		Ctx:  ctx,
		Pg:   pg,
		Pool: pool,
	})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
				return schema.New(tx).InitProdSchema(ctx)
			})
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")
	igts.Aircraft = aircraftrp.New()

	tokenHash, err := scram.SHA256().Hash(adminToken, "", 4096)
	igts.Require().NoError(err, "cannot hash the admin token")
	c := &config.Config{Vers: config.Version}
	c.Admin.TokenHash = tokenHash
	maxRequests := rateLimitMax
	c.Usecases.Inquiries.RateLimit.MaxRequests = &maxRequests

	igts.Gin = gin.New(gin.Logger(), gin.Recovery())
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	err = routes.Register(igts.Gin, igts.Pool, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

func float64Addr(f float64) *float64 {
	return &f
}

func jsonBody(v any) io.Reader {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return strings.NewReader(string(b))
}

// createAircraft persists a listing through the repository, filling
// the default attributes which the REST creation path would fill.
func (igts *IntegrationGinTestSuite) createAircraft(
	a *model.Aircraft,
) *model.Aircraft {
	a.ID = uuid.New()
	if a.PriceCurrency == "" {
		a.PriceCurrency = "USD"
	}
	if a.Features == nil {
		a.Features = []string{}
	}
	var created *model.Aircraft
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			var err error
			created, err = igts.Aircraft.Conn(c).Create(ctx, a)
			return err
		},
	)
	igts.Require().NoError(err, "failed to create initial listing")
	return created
}

type request struct {
	method string
	path   string
	body   io.Reader
	ip     string
	token  string
}

func (igts *IntegrationGinTestSuite) send(
	r request, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(
		r.method, "/api/avweb/v1"+r.path, r.body,
	)
	igts.Require().NoError(err, "cannot create %s request", r.method)
	if r.body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	if r.ip != "" {
		req.RemoteAddr = r.ip + ":51789"
	}
	if r.token != "" {
		req.Header.Add("Authorization", "Bearer "+r.token)
	}
	igts.Gin.ServeHTTP(w, req)
	if res != nil {
		b := w.Body.Bytes()
		igts.NoError(json.Unmarshal(b, res), "body is not json")
	}
	return w
}

type listingPage struct {
	Items []listingItem
	Total int
	Page  int
	Pages int
}

type listingItem struct {
	ID        uuid.UUID
	Slug      string
	Title     string
	Status    string
	Category  string
	Price     *float64
	ViewCount int `json:"view_count"`
}

func (lp *listingPage) slugs() []string {
	slugs := make([]string, len(lp.Items))
	for n := range lp.Items {
		slugs[n] = lp.Items[n].Slug
	}
	return slugs
}

func (igts *IntegrationGinTestSuite) TestListExcludesDrafts() {
	igts.createAircraft(&model.Aircraft{
		Slug:             "list-visible-citation",
		Title:            "Cessna Citation CJ3+",
		Status:           model.StatusAvailable,
		Category:         model.CategoryJet,
		Manufacturer:     "Cessna",
		Model:            "Citation CJ3+",
		YearManufactured: 2019,
		Price:            float64Addr(8_500_000),
	})
	igts.createAircraft(&model.Aircraft{
		Slug:             "list-hidden-draft",
		Title:            "Unpublished Listing",
		Status:           model.StatusDraft,
		Category:         model.CategoryJet,
		Manufacturer:     "Cessna",
		Model:            "Citation M2",
		YearManufactured: 2021,
	})

	res := &listingPage{}
	w := igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft",
	}, res)

	igts.Equal(200, w.Code)
	igts.Equal(1, res.Page)
	igts.Contains(res.slugs(), "list-visible-citation")
	igts.NotContains(res.slugs(), "list-hidden-draft")
}

func (igts *IntegrationGinTestSuite) TestListFiltering() {
	igts.createAircraft(&model.Aircraft{
		Slug:             "filter-bell-407",
		Title:            "Bell 407GXP",
		Status:           model.StatusAvailable,
		Category:         model.CategoryHelicopter,
		Manufacturer:     "Bell",
		Model:            "407GXP",
		YearManufactured: 2018,
		Price:            float64Addr(3_100_000),
	})
	igts.createAircraft(&model.Aircraft{
		Slug:             "filter-king-air",
		Title:            "Beechcraft King Air 350i",
		Status:           model.StatusAvailable,
		Category:         model.CategoryTurboprop,
		Manufacturer:     "Beechcraft",
		Model:            "King Air 350i",
		YearManufactured: 2016,
		Price:            float64Addr(6_200_000),
	})

	res := &listingPage{}
	w := igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft?category=helicopter&max-price=4000000",
	}, res)

	igts.Equal(200, w.Code)
	igts.Contains(res.slugs(), "filter-bell-407")
	igts.NotContains(res.slugs(), "filter-king-air")

	res = &listingPage{}
	w = igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft?search=king+air",
	}, res)

	igts.Equal(200, w.Code)
	igts.Contains(res.slugs(), "filter-king-air")
	igts.NotContains(res.slugs(), "filter-bell-407")
}

func (igts *IntegrationGinTestSuite) TestListBadRequest() {
	res := map[string][]string{}
	w := igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft?category=blimp",
	}, &res)

	igts.Equal(400, w.Code)
	igts.Contains(res, "category")
}

func (igts *IntegrationGinTestSuite) TestGetBySlugCountsViews() {
	igts.createAircraft(&model.Aircraft{
		Slug:             "view-seneca-ii",
		Title:            "Piper Seneca II",
		Status:           model.StatusAvailable,
		Category:         model.CategoryPiston,
		Manufacturer:     "Piper",
		Model:            "Seneca II",
		YearManufactured: 1978,
	})

	res := &listingItem{}
	w := igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft/view-seneca-ii",
	}, res)
	igts.Equal(200, w.Code)
	igts.Equal("view-seneca-ii", res.Slug)
	igts.Nil(res.Price, "expected a contact-for-price listing")
	igts.Equal(0, res.ViewCount)

	res = &listingItem{}
	w = igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft/view-seneca-ii",
	}, res)
	igts.Equal(200, w.Code)
	igts.Equal(1, res.ViewCount, "first visit should be counted")
}

func (igts *IntegrationGinTestSuite) TestGetBySlugNotFound() {
	igts.createAircraft(&model.Aircraft{
		Slug:             "get-hidden-draft",
		Title:            "Unpublished Listing",
		Status:           model.StatusDraft,
		Category:         model.CategoryJet,
		Manufacturer:     "Embraer",
		Model:            "Phenom 100",
		YearManufactured: 2020,
	})
	for _, slug := range []string{"get-hidden-draft", "no-such-slug"} {
		res := &struct{ Detail string }{}
		w := igts.send(request{
			method: http.MethodGet,
			path:   "/aircraft/" + slug,
		}, res)
		igts.Equal(404, w.Code, "slug %q should be hidden", slug)
	}
}

func (igts *IntegrationGinTestSuite) TestSimilarListings() {
	igts.createAircraft(&model.Aircraft{
		Slug:             "similar-phenom-300",
		Title:            "Embraer Phenom 300",
		Status:           model.StatusAvailable,
		Category:         model.CategoryJet,
		Manufacturer:     "Embraer",
		Model:            "Phenom 300",
		YearManufactured: 2018,
		Price:            float64Addr(9_000_000),
	})
	igts.createAircraft(&model.Aircraft{
		Slug:             "similar-phenom-300e",
		Title:            "Embraer Phenom 300E",
		Status:           model.StatusAvailable,
		Category:         model.CategoryJet,
		Manufacturer:     "Embraer",
		Model:            "Phenom 300E",
		YearManufactured: 2019,
		Price:            float64Addr(9_500_000),
	})

	res := &struct{ Items []listingItem }{}
	w := igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft/similar-phenom-300/similar?limit=24",
	}, res)

	igts.Equal(200, w.Code)
	slugs := make([]string, len(res.Items))
	for n := range res.Items {
		slugs[n] = res.Items[n].Slug
	}
	igts.Contains(slugs, "similar-phenom-300e")
	igts.NotContains(
		slugs, "similar-phenom-300",
		"a listing may not be similar to itself",
	)
}

func (igts *IntegrationGinTestSuite) TestSubmitInquiry() {
	res := &struct {
		ID       uuid.UUID
		Status   string
		Priority string
	}{}
	w := igts.send(request{
		method: http.MethodPost,
		path:   "/inquiries",
		ip:     "203.0.113.10",
		body: jsonBody(map[string]any{
			"full_name": "Avery Hale",
			"email":     "avery@example.com",
			"type":      "general",
			"subject":   "Fleet acquisition",
			"message":   "Looking for two light jets.",
		}),
	}, res)

	igts.Equal(201, w.Code)
	igts.NotEqual(uuid.Nil, res.ID)
	igts.Equal("new", res.Status)
	igts.Equal("medium", res.Priority)
	igts.Equal("3", w.Header().Get("X-RateLimit-Limit"))
	igts.Equal("2", w.Header().Get("X-RateLimit-Remaining"))
	igts.NotEmpty(w.Header().Get("X-RateLimit-Reset"))
}

func (igts *IntegrationGinTestSuite) TestSubmitInquiryBadRequest() {
	for _, tc := range []struct {
		name  string
		body  map[string]any
		field string
	}{
		{
			name: "missing email",
			body: map[string]any{
				"full_name": "Avery Hale",
				"type":      "general",
				"subject":   "Hello",
				"message":   "Hello there.",
			},
			field: "email",
		},
		{
			name: "unknown type",
			body: map[string]any{
				"full_name": "Avery Hale",
				"email":     "avery@example.com",
				"type":      "charter",
				"subject":   "Hello",
				"message":   "Hello there.",
			},
			field: "type",
		},
	} {
		igts.Run(tc.name, func() {
			res := map[string][]string{}
			w := igts.send(request{
				method: http.MethodPost,
				path:   "/inquiries",
				ip:     "203.0.113.11",
				body:   jsonBody(tc.body),
			}, &res)

			igts.Equal(400, w.Code)
			igts.Contains(res, tc.field)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestSubmitInquiryRateLimit() {
	body := func() io.Reader {
		return jsonBody(map[string]any{
			"full_name": "Robin Vance",
			"email":     "robin@example.com",
			"type":      "financing",
			"subject":   "Financing options",
			"message":   "What terms are available?",
		})
	}
	for n := 0; n < rateLimitMax; n++ {
		w := igts.send(request{
			method: http.MethodPost,
			path:   "/inquiries",
			ip:     "203.0.113.12",
			body:   body(),
		}, nil)
		igts.Require().Equal(201, w.Code, "submission %d", n+1)
	}
	w := igts.send(request{
		method: http.MethodPost,
		path:   "/inquiries",
		ip:     "203.0.113.12",
		body:   body(),
	}, nil)
	igts.Equal(429, w.Code)
	igts.Equal("0", w.Header().Get("X-RateLimit-Remaining"))

	// another client is not affected
	w = igts.send(request{
		method: http.MethodPost,
		path:   "/inquiries",
		ip:     "203.0.113.13",
		body:   body(),
	}, nil)
	igts.Equal(201, w.Code)
}

func (igts *IntegrationGinTestSuite) TestAdminAuthentication() {
	for _, tc := range []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "wrong token", token: "wrong-admin-token"},
	} {
		igts.Run(tc.name, func() {
			w := igts.send(request{
				method: http.MethodGet,
				path:   "/admin/inquiries",
				token:  tc.token,
			}, nil)
			igts.Equal(401, w.Code)
		})
	}
}

func (igts *IntegrationGinTestSuite) TestAdminListingLifecycle() {
	created := &listingItem{}
	w := igts.send(request{
		method: http.MethodPost,
		path:   "/admin/aircraft",
		token:  adminToken,
		body: jsonBody(map[string]any{
			"title":             "Gulfstream G280",
			"slug":              "admin-gulfstream-g280",
			"status":            "available",
			"category":          "jet",
			"manufacturer":      "Gulfstream",
			"model":             "G280",
			"year_manufactured": 2017,
			"price":             14_000_000,
		}),
	}, created)
	igts.Require().Equal(201, w.Code)
	igts.NotEqual(uuid.Nil, created.ID)

	// absent fields stay, null fields clear
	updated := &listingItem{}
	w = igts.send(request{
		method: http.MethodPatch,
		path:   "/admin/aircraft/" + created.ID.String(),
		token:  adminToken,
		body: jsonBody(map[string]any{
			"title": "Gulfstream G280 (2017)",
			"price": nil,
		}),
	}, updated)
	igts.Require().Equal(200, w.Code)
	igts.Equal("Gulfstream G280 (2017)", updated.Title)
	igts.Equal("admin-gulfstream-g280", updated.Slug)
	igts.Nil(updated.Price, "price should be cleared")

	w = igts.send(request{
		method: http.MethodDelete,
		path:   "/admin/aircraft/" + created.ID.String(),
		token:  adminToken,
	}, nil)
	igts.Require().Equal(204, w.Code)

	w = igts.send(request{
		method: http.MethodGet,
		path:   "/aircraft/admin-gulfstream-g280",
	}, nil)
	igts.Equal(404, w.Code, "soft-deleted listing should be hidden")
}

func (igts *IntegrationGinTestSuite) TestAdminListingConflict() {
	body := func() io.Reader {
		return jsonBody(map[string]any{
			"title":             "Cirrus SR22",
			"slug":              "admin-cirrus-sr22",
			"status":            "available",
			"category":          "piston",
			"manufacturer":      "Cirrus",
			"model":             "SR22",
			"year_manufactured": 2022,
		})
	}
	w := igts.send(request{
		method: http.MethodPost,
		path:   "/admin/aircraft",
		token:  adminToken,
		body:   body(),
	}, nil)
	igts.Require().Equal(201, w.Code)

	w = igts.send(request{
		method: http.MethodPost,
		path:   "/admin/aircraft",
		token:  adminToken,
		body:   body(),
	}, nil)
	igts.Equal(409, w.Code, "duplicate slug should conflict")
}

func (igts *IntegrationGinTestSuite) TestAdminInquiriesLifecycle() {
	submitted := &struct{ ID uuid.UUID }{}
	w := igts.send(request{
		method: http.MethodPost,
		path:   "/inquiries",
		ip:     "203.0.113.14",
		body: jsonBody(map[string]any{
			"full_name": "Jordan Reyes",
			"email":     "jordan@example.com",
			"type":      "partnership",
			"subject":   "Brokerage partnership",
			"message":   "We operate a charter fleet.",
		}),
	}, submitted)
	igts.Require().Equal(201, w.Code)

	listed := &struct {
		Items []struct {
			ID     uuid.UUID
			Status string
		}
	}{}
	w = igts.send(request{
		method: http.MethodGet,
		path:   "/admin/inquiries",
		token:  adminToken,
	}, listed)
	igts.Require().Equal(200, w.Code)
	var found bool
	for _, item := range listed.Items {
		if item.ID == submitted.ID {
			found = true
			igts.Equal("new", item.Status)
		}
	}
	igts.True(found, "submitted inquiry should be listed")

	updated := &struct {
		Status      string
		AdminNotes  *string    `json:"admin_notes"`
		RespondedAt *time.Time `json:"responded_at"`
	}{}
	w = igts.send(request{
		method: http.MethodPatch,
		path:   "/admin/inquiries/" + submitted.ID.String(),
		token:  adminToken,
		body: jsonBody(map[string]any{
			"status":      "responded",
			"admin_notes": "Replied with the partnership deck.",
		}),
	}, updated)
	igts.Require().Equal(200, w.Code)
	igts.Equal("responded", updated.Status)
	igts.Require().NotNil(updated.AdminNotes)
	igts.Equal("Replied with the partnership deck.", *updated.AdminNotes)
	igts.NotNil(
		updated.RespondedAt,
		"responding should stamp the response time",
	)
}

func (igts *IntegrationGinTestSuite) TestAdminInquiryNotFound() {
	w := igts.send(request{
		method: http.MethodPatch,
		path:   "/admin/inquiries/" + uuid.New().String(),
		token:  adminToken,
		body:   jsonBody(map[string]any{"status": "closed"}),
	}, nil)
	igts.Equal(404, w.Code)
}
