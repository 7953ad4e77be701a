// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violated rule is
// reported; the errors are joined.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.GRPCAddress == "" {
		errs = append(errs, ErrMissingGRPCAddress)
	}

	if cfg.Server.MaxLifetime == 0 {
		errs = append(errs, ErrMissingMaxLifetime)
	}

	if cfg.Server.MaxLifetime < 0 || cfg.Server.GracePeriod() < 0 {
		errs = append(errs, ErrNegativeDuration)
	}

	return errors.Join(errs...)
}
