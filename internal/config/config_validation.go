// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") && !strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
		return fmt.Errorf("%w: address %q must start with http:// or https://", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}

	if cfg.Adapter.PingInterval < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Session.ChannelLimit < 0 {
		return fmt.Errorf("%w: channel limit must not be negative", ErrInvalidChatConfigs)
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.Address == "" || cfg.Secret == "" || cfg.APIKey == "" {
		return ErrInvalidDevServerConfigs
	}

	if cfg.ChatterInterval < 0 || cfg.TokenTTL <= 0 {
		return ErrInvalidDevServerConfigs
	}

	return nil
}
