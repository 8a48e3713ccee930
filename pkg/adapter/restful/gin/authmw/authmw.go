// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package authmw provides the admin authentication middleware. Admin
// REST APIs expect an Authorization header carrying a static bearer
// token; the configuration file stores a scram hash of that token
// (never the token itself) and this middleware recomputes the hash of
// the presented token with the stored salt and iterations count,
// comparing the results in constant time.
package authmw

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aerovista/avweb/pkg/adapter/restful/gin/serdser"
	"github.com/aerovista/avweb/pkg/core/cerr"
	"github.com/aerovista/avweb/pkg/core/scram"
	"github.com/gin-gonic/gin"
)

// New creates the admin authentication middleware, verifying bearer
// tokens against the tokenHash stored scram hash string using the h
// hasher. The tokenHash is parsed eagerly, so a malformed
// configuration value is reported at startup instead of at the first
// admin request.
func New(h scram.Hasher, tokenHash string) (gin.HandlerFunc, error) {
	salt, iters, err := parseHash(tokenHash)
	if err != nil {
		return nil, fmt.Errorf("parsing admin token hash: %w", err)
	}
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			serdser.SerErr(c, cerr.Authentication(
				errors.New("missing bearer token"),
			))
			c.Abort()
			return
		}
		computed, err := h.Hash(token, salt, iters)
		if err != nil ||
			subtle.ConstantTimeCompare(
				[]byte(computed), []byte(tokenHash),
			) != 1 {
			serdser.SerErr(c, cerr.Authentication(
				errors.New("invalid admin token"),
			))
			c.Abort()
			return
		}
		c.Next()
	}, nil
}

// bearerToken extracts the token of an "Authorization: Bearer ..."
// request header.
func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// parseHash extracts the salt and iterations count of a stored hash
// string in the following format.
//
//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
func parseHash(h string) (salt string, iters int, err error) {
	parts := strings.Split(h, "$")
	if len(parts) != 3 {
		return "", 0, fmt.Errorf(
			"expected 3 dollar-separated parts, but got %d", len(parts),
		)
	}
	itersSalt := strings.SplitN(parts[1], ":", 2)
	if len(itersSalt) != 2 {
		return "", 0, errors.New("missing iters:salt part")
	}
	iters, err = strconv.Atoi(itersSalt[0])
	if err != nil {
		return "", 0, fmt.Errorf("parsing iterations count: %w", err)
	}
	return itersSalt[1], iters, nil
}
