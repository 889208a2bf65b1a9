package repository

import (
	"context"
	"testing"
	"time"

	repo "freshcart/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return gdb, mock
}

var productColumns = []string{
	"id", "category_id", "name_en", "name_ta", "description_en", "description_ta",
	"price", "unit", "image", "in_stock", "is_featured", "is_new", "variants",
	"created_at", "updated_at",
}

func TestProductGormRepository_ListAll(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)
	now := time.Now()

	rows := sqlmock.NewRows(productColumns).
		AddRow("p1", "food-groceries", "Ponni Rice", "பொன்னி அரிசி", "", "", "40.00", "500g", "", true, true, false,
			[]byte(`[{"unit":"500g","price":"40"},{"unit":"1kg","price":"70"}]`), now, now).
		AddRow("p2", "households", "Broom", "", "", "", "120.50", "1pc", "", false, false, true,
			[]byte(`[]`), now, now)
	mock.ExpectQuery(`SELECT \* FROM "products" ORDER BY created_at asc`).WillReturnRows(rows)

	items, err := r.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, "பொன்னி அரிசி", items[0].NameTa)
	assert.True(t, decimal.NewFromInt(40).Equal(items[0].Price))
	require.Len(t, items[0].Variants, 2)
	assert.Equal(t, "1kg", items[0].Variants[1].Unit)
	assert.True(t, decimal.NewFromInt(70).Equal(items[0].Variants[1].Price))

	assert.False(t, items[1].InStock)
	assert.True(t, items[1].IsNew)
	assert.True(t, decimal.RequireFromString("120.5").Equal(items[1].Price))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_FindByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(productColumns))

	_, err := r.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_Delete_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := r.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_Delete_OK(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
		WithArgs("p1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.Delete(context.Background(), "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_Update_OnlyPatchedColumns(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	name := "Sona Masoori"
	price := decimal.NewFromInt(65)

	mock.ExpectExec(`UPDATE "products" SET "name_en"=\$1,"price"=\$2,"updated_at"=\$3 WHERE id = \$4`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := r.Update(context.Background(), "p1", repo.ProductPatch{NameEn: &name, Price: &price})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductGormRepository_Update_EmptyPatchIsNoop(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewProductGormRepository(gdb)

	assert.NoError(t, r.Update(context.Background(), "p1", repo.ProductPatch{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPatch(t *testing.T) {
	inStock := false
	unit := "2kg"

	p, cols := applyPatch(repo.ProductPatch{InStock: &inStock, Unit: &unit})

	assert.Equal(t, []string{"unit", "in_stock"}, cols)
	assert.Equal(t, "2kg", p.Unit)
	assert.False(t, p.InStock)
}

func TestCategoryGormRepository_Delete_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewCategoryGormRepository(gdb)

	mock.ExpectExec(`DELETE FROM "categories" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, r.Delete(context.Background(), "c1"), repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminUserGormRepository_FindByEmail_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := NewAdminUserGormRepository(gdb)

	mock.ExpectQuery(`SELECT \* FROM "admin_users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

	_, err := r.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repo.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
