// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Storage.SessionNamespace) == "" {
		return fmt.Errorf("%w: empty session namespace", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.ProfileRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.PageSize < 1 || cfg.App.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size %d is outside 1..%d", ErrInvalidAppConfigs, cfg.App.PageSize, MaxPageSize)
	}

	return nil
}
