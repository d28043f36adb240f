package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "wealthtrack/internal/errors"
	"wealthtrack/internal/models"
	"wealthtrack/internal/pagination"
	"wealthtrack/internal/portfolio"
	"wealthtrack/internal/testutil"
)

func TestHoldingStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create_and_get_with_detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewHoldingStore(db)

		h := &models.Holding{
			Kind:     portfolio.KindFixedRate,
			Name:     "Term deposit",
			Quantity: decimal.NewFromInt(1),
			FixedRateDetail: &models.FixedRateDetail{
				AnnualRate:        decimal.RequireFromString("0.035"),
				InitialInvestment: decimal.NewFromInt(5000),
				InvestmentDate:    testutil.Date(2024, 2, 1),
			},
		}
		testutil.AssertNoError(t, store.Create(ctx, h))

		got, err := store.Get(ctx, h.ID)
		testutil.AssertNoError(t, err)
		if got.FixedRateDetail == nil {
			t.Fatal("expected fixed-rate detail to be preloaded")
		}
		if !got.FixedRateDetail.AnnualRate.Equal(decimal.RequireFromString("0.035")) {
			t.Errorf("expected rate 0.035, got %s", got.FixedRateDetail.AnnualRate)
		}
		if got.MarketDetail != nil {
			t.Error("fixed-rate holding should have no market detail")
		}
	})

	t.Run("get_missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		_, err := NewHoldingStore(db).Get(ctx, "0190f5b4-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "HOLDING_NOT_FOUND")
	})

	t.Run("list_and_page", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewHoldingStore(db)

		testutil.CreateTestMarketHolding(t, db, "AAPL", "1", "100")
		testutil.CreateTestMarketHolding(t, db, "MSFT", "2", "200")
		testutil.CreateTestFixedRateHolding(t, db, "1000", "0.05", testutil.Date(2024, 1, 1))

		all, err := store.List(ctx)
		testutil.AssertNoError(t, err)
		if len(all) != 3 {
			t.Fatalf("expected 3 holdings, got %d", len(all))
		}
		for _, h := range all {
			if _, err := h.ToDomain(); err != nil {
				t.Errorf("holding %s should convert: %v", h.ID, err)
			}
		}

		page, err := store.ListPage(ctx, pagination.PageRequest{Page: 2, PageSize: 2})
		testutil.AssertNoError(t, err)
		if page.TotalItems != 3 || page.TotalPages != 2 || len(page.Data) != 1 {
			t.Errorf("unexpected page: total=%d pages=%d len=%d", page.TotalItems, page.TotalPages, len(page.Data))
		}
	})

	t.Run("update_parent_and_detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewHoldingStore(db)

		h := testutil.CreateTestMarketHolding(t, db, "AAPL", "1", "100")
		h.Name = "Apple"
		h.Quantity = decimal.RequireFromString("4.5")
		h.MarketDetail.PurchasePrice = decimal.NewFromInt(120)
		testutil.AssertNoError(t, store.Update(ctx, h))

		got, err := store.Get(ctx, h.ID)
		testutil.AssertNoError(t, err)
		if got.Name != "Apple" || !got.Quantity.Equal(decimal.RequireFromString("4.5")) {
			t.Errorf("parent not updated: %s %s", got.Name, got.Quantity)
		}
		if !got.MarketDetail.PurchasePrice.Equal(decimal.NewFromInt(120)) {
			t.Errorf("detail not updated: %s", got.MarketDetail.PurchasePrice)
		}
	})

	t.Run("delete_cascades_detail", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewHoldingStore(db)

		h := testutil.CreateTestMarketHolding(t, db, "AAPL", "1", "100")
		testutil.AssertNoError(t, store.Delete(ctx, h.ID))

		var count int64
		db.Model(&models.MarketTrackedDetail{}).Where("holding_id = ?", h.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected detail to be deleted, found %d", count)
		}

		err := store.Delete(ctx, h.ID)
		if err != apperrors.ErrHoldingNotFound {
			t.Errorf("expected ErrHoldingNotFound on second delete, got %v", err)
		}
	})
}

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert_creates_then_overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewSnapshotStore(db)
		day := testutil.Date(2024, 6, 1)

		first, err := store.Upsert(ctx, day, decimal.RequireFromString("100.50"))
		testutil.AssertNoError(t, err)
		second, err := store.Upsert(ctx, day, decimal.RequireFromString("200.25"))
		testutil.AssertNoError(t, err)

		if first.ID != second.ID {
			t.Errorf("expected the same row, got %s and %s", first.ID, second.ID)
		}
		testutil.AssertMoney(t, second.TotalValue, "200.25")

		var count int64
		db.Model(&models.PortfolioSnapshot{}).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 snapshot, got %d", count)
		}
	})

	t.Run("upsert_leaves_other_dates_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewSnapshotStore(db)

		testutil.CreateTestSnapshot(t, db, testutil.Date(2024, 5, 31), "50")
		_, err := store.Upsert(ctx, testutil.Date(2024, 6, 1), decimal.NewFromInt(75))
		testutil.AssertNoError(t, err)

		snaps, err := store.ListSince(ctx, testutil.Date(2024, 1, 1))
		testutil.AssertNoError(t, err)
		if len(snaps) != 2 {
			t.Fatalf("expected 2 snapshots, got %d", len(snaps))
		}
		testutil.AssertMoney(t, snaps[0].TotalValue, "50.00")
	})

	t.Run("latest_and_since", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewSnapshotStore(db)

		_, err := store.Latest(ctx)
		testutil.AssertAppError(t, err, "SNAPSHOT_NOT_FOUND")

		testutil.CreateTestSnapshot(t, db, testutil.Date(2024, 3, 3), "30")
		testutil.CreateTestSnapshot(t, db, testutil.Date(2024, 3, 1), "10")
		testutil.CreateTestSnapshot(t, db, testutil.Date(2024, 3, 2), "20")

		latest, err := store.Latest(ctx)
		testutil.AssertNoError(t, err)
		if !latest.Date.Equal(testutil.Date(2024, 3, 3)) {
			t.Errorf("expected latest 2024-03-03, got %s", latest.Date)
		}

		snaps, err := store.ListSince(ctx, testutil.Date(2024, 3, 2))
		testutil.AssertNoError(t, err)
		if len(snaps) != 2 {
			t.Fatalf("expected 2 snapshots, got %d", len(snaps))
		}
		if !snaps[0].Date.Equal(testutil.Date(2024, 3, 2)) {
			t.Errorf("expected ascending order, got %s first", snaps[0].Date)
		}
	})
}
