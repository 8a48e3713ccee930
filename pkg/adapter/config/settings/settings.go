// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package settings provides helper types and generic functions for
// the configuration settings, such as the yaml-friendly Duration type,
// the nil pointer initialization helpers, and the range verification
// helpers.
package settings
