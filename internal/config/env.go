// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the CHAT_*, ADAPTER_*, DEVSERVER_* and LOG_*
// variables plus CONFIG, the path of the JSON config file. Unset variables
// leave their fields zero so the JSON and flag layers can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
