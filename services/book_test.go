package services

import (
	"testing"

	"dompet-api/models"
)

func TestBookWalletLinks(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	walletA := testWallet(t, db, user.ID, 0)
	walletB := testWallet(t, db, user.ID, 0)
	svc := NewBookService(db)

	book, err := svc.Create(testCtx, user.ID, &models.CreateBookRequest{
		Name:      "household",
		Program:   "2025",
		WalletIDs: []string{walletA.ID},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if book.Program != "2025" {
		t.Errorf("program = %q, want 2025", book.Program)
	}

	got, err := svc.GetByID(testCtx, user.ID, book.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Wallets) != 1 || got.Wallets[0].ID != walletA.ID {
		t.Fatalf("linked wallets = %+v, want just %s", got.Wallets, walletA.ID)
	}

	// A present wallet_ids replaces the whole set.
	updated, err := svc.Update(testCtx, user.ID, book.ID, &models.UpdateBookRequest{
		WalletIDs: []string{walletB.ID},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Wallets) != 1 || updated.Wallets[0].ID != walletB.ID {
		t.Errorf("replaced wallets = %+v, want just %s", updated.Wallets, walletB.ID)
	}

	// An absent wallet_ids leaves links alone.
	renamed, err := svc.Update(testCtx, user.ID, book.ID, &models.UpdateBookRequest{
		Name: strPtr("household v2"),
	})
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if len(renamed.Wallets) != 1 || renamed.Wallets[0].ID != walletB.ID {
		t.Errorf("rename touched wallet links: %+v", renamed.Wallets)
	}
}

func TestBookLinkRequiresOwnedWallet(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	other := testUser(t, db)
	foreignWallet := testWallet(t, db, other.ID, 0)
	svc := NewBookService(db)

	_, err := svc.Create(testCtx, user.ID, &models.CreateBookRequest{
		Name:      "sneaky",
		WalletIDs: []string{foreignWallet.ID},
	})
	assertServiceError(t, err, 404)
}

func TestBookSummary(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	book := testBook(t, db, user.ID)
	svc := NewBookService(db)
	itemSvc := NewItemService(db, nil)

	for _, step := range []struct {
		itemType string
		amount   models.Money
	}{
		{models.TypeIncome, 8000},
		{models.TypeExpense, 3000},
		{models.TypeExpense, 1000},
	} {
		if _, err := itemSvc.Create(testCtx, user, &models.CreateItemRequest{
			BookID: &book.ID,
			Type:   step.itemType,
			Amount: step.amount,
			Name:   "entry",
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	summary, err := svc.GetSummary(testCtx, user.ID, book.ID, nil, nil)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.TotalIncome != 8000 || summary.TotalExpense != 4000 || summary.NetFlow != 4000 {
		t.Errorf("summary = %+v, want income 8000 expense 4000 net 4000", summary)
	}

	_, err = svc.GetSummary(testCtx, testUser(t, db).ID, book.ID, nil, nil)
	assertServiceError(t, err, 404)
}

func TestBookItemSurvivesBookDeletion(t *testing.T) {
	db := testDB(t)
	user := testUser(t, db)
	book := testBook(t, db, user.ID)
	wallet := testWallet(t, db, user.ID, 0)
	bookSvc := NewBookService(db)
	itemSvc := NewItemService(db, nil)

	item, err := itemSvc.Create(testCtx, user, &models.CreateItemRequest{
		BookID:   &book.ID,
		WalletID: &wallet.ID,
		Type:     models.TypeIncome,
		Amount:   100,
		Name:     "keeper",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := bookSvc.Delete(testCtx, user.ID, book.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The item stays reachable through the wallet; its book link is gone.
	got, err := itemSvc.Get(testCtx, user, item.ID)
	if err != nil {
		t.Fatalf("item lost with its book: %v", err)
	}
	if got.BookID != nil {
		t.Errorf("book reference not cleared: %v", *got.BookID)
	}
}
