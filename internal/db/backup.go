// Copyright (c) 2026 liuyuxun, 1225
// bigcalc - arbitrary-precision integer calculator
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/liuyuxun641102/liuyuxun/internal/model"
)

// backupEnvelope is the on-disk layout of a history export.
type backupEnvelope struct {
	Version      int                 `json:"version"`
	Calculations []model.Calculation `json:"calculations"`
}

const backupVersion = 1

// ExportHistory writes the given store's full history to w as
// zstd-compressed JSON.
func ExportHistory(s Store, w io.Writer) error {
	calcs, err := s.GetAllCalculations()
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(zw)
	if err := enc.Encode(backupEnvelope{Version: backupVersion, Calculations: calcs}); err != nil {
		_ = zw.Close()
		return fmt.Errorf("encoding history: %w", err)
	}
	return zw.Close()
}

// ImportHistory reads a zstd-compressed history export from r and inserts
// every entry into the store. It returns the number of imported entries.
func ImportHistory(s Store, r io.Reader) (int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return 0, err
	}
	defer zr.Close()

	var env backupEnvelope
	if err := json.NewDecoder(zr).Decode(&env); err != nil {
		return 0, fmt.Errorf("decoding history: %w", err)
	}
	if env.Version != backupVersion {
		return 0, fmt.Errorf("unsupported backup version %d", env.Version)
	}

	n := 0
	for _, c := range env.Calculations {
		c.ID = 0 // let the target assign fresh IDs
		if _, err := s.AddCalculation(c); err != nil {
			return n, fmt.Errorf("importing entry %q: %w", c.Expression, err)
		}
		n++
	}
	return n, nil
}
