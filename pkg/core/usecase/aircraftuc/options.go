// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aircraftuc

import (
	"errors"
	"fmt"
)

// Option is a functional option for the aircraft use case.
type Option func(uc *UseCase) error

// WithSimilarLimit option configures an aircraft UseCase instance to
// return as much as the given number of recommendations by default.
// This option may be passed to the New() function.
func WithSimilarLimit(limit int) Option {
	return func(uc *UseCase) error {
		if limit <= 0 {
			return fmt.Errorf("limit (%d) is not positive", limit)
		}
		if uc.similarLimit != 0 {
			return errors.New("similar limit is already configured")
		}
		uc.similarLimit = limit
		return nil
	}
}
