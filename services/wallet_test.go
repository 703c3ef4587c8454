package services

import (
	"testing"
	"time"

	"dompet-api/models"
)

func TestSetDefaultExclusivity(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	svc := NewWalletService(db)

	first := testWallet(t, db, user.ID, 0)
	second := testWallet(t, db, user.ID, 0)
	third := testWallet(t, db, user.ID, 0)

	if err := svc.SetDefault(testCtx, user.ID, first.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}
	if err := svc.SetDefault(testCtx, user.ID, third.ID); err != nil {
		t.Fatalf("second set default failed: %v", err)
	}

	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM wallets WHERE user_id = $1 AND is_default = TRUE",
		user.ID).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("%d default wallets, want exactly 1", count)
	}

	var defaultID string
	if err := db.QueryRow(
		"SELECT id FROM wallets WHERE user_id = $1 AND is_default = TRUE",
		user.ID).Scan(&defaultID); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if defaultID != third.ID {
		t.Errorf("default wallet = %s, want %s", defaultID, third.ID)
	}

	for _, id := range []string{first.ID, second.ID} {
		wallet, err := svc.GetByID(testCtx, user.ID, id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if wallet.IsDefault {
			t.Errorf("wallet %s still marked default", id)
		}
	}
}

func TestSetDefaultForeignWallet(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	intruder := testUser(t, db)
	wallet := testWallet(t, db, owner.ID, 0)
	svc := NewWalletService(db)

	err := svc.SetDefault(testCtx, intruder.ID, wallet.ID)
	assertServiceError(t, err, 404)
}

func TestWalletCRUDScopedToOwner(t *testing.T) {
	db := testDB(t)
	owner := testUser(t, db)
	intruder := testUser(t, db)
	svc := NewWalletService(db)

	wallet, err := svc.Create(testCtx, owner.ID, &models.CreateWalletRequest{
		Name:    "cash",
		Balance: moneyPtr(5000),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if wallet.Balance != 5000 {
		t.Errorf("initial balance = %d, want 5000", wallet.Balance)
	}

	_, err = svc.GetByID(testCtx, intruder.ID, wallet.ID)
	assertServiceError(t, err, 404)

	_, err = svc.Update(testCtx, intruder.ID, wallet.ID, &models.UpdateWalletRequest{Name: strPtr("mine now")})
	assertServiceError(t, err, 404)

	err = svc.Delete(testCtx, intruder.ID, wallet.ID)
	assertServiceError(t, err, 404)

	got, err := svc.GetByID(testCtx, owner.ID, wallet.ID)
	if err != nil {
		t.Fatalf("owner lost access: %v", err)
	}
	if got.Name != "cash" {
		t.Errorf("wallet was modified: %s", got.Name)
	}
}

func TestWalletSummaryRecomputesFromItems(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	// Pre-seeded balance must not leak into the summary.
	wallet := testWallet(t, db, user.ID, 777777)
	walletSvc := NewWalletService(db)
	itemSvc := NewItemService(db, nil)

	for _, step := range []struct {
		itemType string
		amount   models.Money
	}{
		{models.TypeIncome, 10000},
		{models.TypeIncome, 2500},
		{models.TypeExpense, 4000},
	} {
		if _, err := itemSvc.Create(testCtx, user, &models.CreateItemRequest{
			WalletID: &wallet.ID,
			Type:     step.itemType,
			Amount:   step.amount,
			Name:     "entry",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	summary, err := walletSvc.GetSummary(testCtx, user.ID, wallet.ID, nil, nil)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	if summary.TotalIncome != 12500 {
		t.Errorf("total income = %d, want 12500", summary.TotalIncome)
	}
	if summary.TotalExpense != 4000 {
		t.Errorf("total expense = %d, want 4000", summary.TotalExpense)
	}
	if summary.NetFlow != 8500 {
		t.Errorf("net flow = %d, want 8500", summary.NetFlow)
	}
	if summary.NetFlowDisplay != "85.00" {
		t.Errorf("net flow display = %q, want \"85.00\"", summary.NetFlowDisplay)
	}
}

func TestWalletSummaryDateWindow(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	wallet := testWallet(t, db, user.ID, 0)
	walletSvc := NewWalletService(db)
	itemSvc := NewItemService(db, nil)

	january := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	june := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, step := range []struct {
		date   time.Time
		amount models.Money
	}{
		{january, 1000},
		{june, 2000},
	} {
		date := step.date
		if _, err := itemSvc.Create(testCtx, user, &models.CreateItemRequest{
			WalletID: &wallet.ID,
			Type:     models.TypeIncome,
			Amount:   step.amount,
			Name:     "dated",
			Date:     &date,
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	summary, err := walletSvc.GetSummary(testCtx, user.ID, wallet.ID, &start, &end)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalIncome != 1000 {
		t.Errorf("windowed income = %d, want 1000", summary.TotalIncome)
	}

	// Inclusive bounds: a window ending exactly on the item's timestamp
	// still counts it.
	exact, err := walletSvc.GetSummary(testCtx, user.ID, wallet.ID, &start, &january)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if exact.TotalIncome != 1000 {
		t.Errorf("inclusive-end income = %d, want 1000", exact.TotalIncome)
	}
}
