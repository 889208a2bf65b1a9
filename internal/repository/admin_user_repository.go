package repository

import (
	"context"
	"time"

	"freshcart/internal/domain/model"
)

type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (model.AdminUser, error)
	FindByID(ctx context.Context, id int64) (model.AdminUser, error)
	Create(ctx context.Context, u model.AdminUser) (model.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	// token_versionを+1して新しい値を返す（強制ログアウト）
	IncrementTokenVersion(ctx context.Context, id int64) (int, error)
}
