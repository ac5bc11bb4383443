package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"repairshop/internal/infra"
	"repairshop/internal/infra/store"
)

// loadDoc decodes the document at key into v. A missing key is not an error;
// found reports whether anything was read.
func loadDoc(ctx context.Context, s store.Store, logger *slog.Logger, key string, v any) (found bool, err error) {
	body, err := s.Load(ctx, key)
	if infra.IsKind(err, infra.KindNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return false, infra.WrapRepoErr(logger, infra.KindDecodeFailure, "decode "+key, err)
	}
	return true, nil
}

func saveDoc(ctx context.Context, s store.Store, logger *slog.Logger, key string, v any) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return infra.WrapRepoErr(logger, infra.KindEncodeFailure, "encode "+key, err)
	}
	return s.Save(ctx, key, body)
}
