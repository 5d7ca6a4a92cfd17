package quote

import (
	"context"
	"errors"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"partbroker/internal/modules/file"
	"partbroker/internal/modules/quotenotif"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: ":memory:"}),
		&gorm.Config{},
	)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&file.File{}, &Quote{}, &quotenotif.QuoteNotification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	notifier := quotenotif.NewService(quotenotif.NewRepository(db))
	return NewService(db, NewRepository(db), notifier), db
}

func seedFile(t *testing.T, db *gorm.DB, uploadedBy string) *file.File {
	t.Helper()
	f := &file.File{
		ObjectKey:    "stp/20260101_000000_test_bracket.step",
		OriginalName: "bracket.step",
		ContentType:  "application/stp",
		Version:      1,
		UploadedBy:   uploadedBy,
		QuantityUnit: "pieces",
	}
	if err := db.Create(f).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}
	return f
}

func createReq(fileID int64) CreateQuoteRequest {
	return CreateQuoteRequest{
		NotificationID:  1,
		FileID:          fileID,
		PartName:        "bracket",
		MaterialCost:    1000,
		LaborCost:       200,
		MachineTimeCost: 300,
	}
}

func TestCreateQuote(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")

	margin := 20.0
	req := createReq(f.ID)
	req.ProfitMarginPercent = &margin

	q, err := svc.Create(context.Background(), "maker", req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if q.Status != StatusSent {
		t.Fatalf("status = %s, want sent", q.Status)
	}
	if q.Subtotal != 1500 || q.ProfitAmount != 300 || q.TotalPrice != 1800 {
		t.Fatalf("breakdown = %v/%v/%v, want 1500/300/1800", q.Subtotal, q.ProfitAmount, q.TotalPrice)
	}

	var n quotenotif.QuoteNotification
	if err := db.Where("quote_id = ?", q.ID).First(&n).Error; err != nil {
		t.Fatalf("quote notification not created: %v", err)
	}
	if n.SentTo != "buyer1" || n.SentBy != "maker" || n.FileID != f.ID {
		t.Fatalf("notification routed wrong: sent_to=%s sent_by=%s file_id=%d", n.SentTo, n.SentBy, n.FileID)
	}
	if n.IsRead {
		t.Fatal("new notification should be unread")
	}
}

func TestCreateQuoteDefaultMargin(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")

	q, err := svc.Create(context.Background(), "maker", createReq(f.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if q.ProfitMarginPercent != 20 {
		t.Fatalf("margin = %v, want default 20", q.ProfitMarginPercent)
	}
}

func TestCreateQuoteMissingFile(t *testing.T) {
	svc, db := testService(t)

	_, err := svc.Create(context.Background(), "maker", createReq(999))
	if !errors.Is(err, file.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}

	var quotes, notifs int64
	db.Model(&Quote{}).Count(&quotes)
	db.Model(&quotenotif.QuoteNotification{}).Count(&notifs)
	if quotes != 0 || notifs != 0 {
		t.Fatalf("rows persisted after failed create: quotes=%d notifs=%d", quotes, notifs)
	}
}

func TestCreateQuoteNegativeCost(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")

	req := createReq(f.ID)
	req.LaborCost = -1
	if _, err := svc.Create(context.Background(), "maker", req); !errors.Is(err, ErrInvalidCost) {
		t.Fatalf("err = %v, want ErrInvalidCost", err)
	}

	bad := -5.0
	req = createReq(f.ID)
	req.ProfitMarginPercent = &bad
	if _, err := svc.Create(context.Background(), "maker", req); !errors.Is(err, ErrInvalidCost) {
		t.Fatalf("err = %v, want ErrInvalidCost for negative margin", err)
	}
}

func TestAcceptQuote(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")
	q, err := svc.Create(context.Background(), "maker", createReq(f.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), q.ID, UpdateStatusRequest{Status: "accepted"})
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if updated.Status != StatusAccepted {
		t.Fatalf("status = %s, want accepted", updated.Status)
	}
	if updated.AcceptedAt == nil {
		t.Fatal("accepted_at not set")
	}
}

func TestRejectQuote(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")
	q, err := svc.Create(context.Background(), "maker", createReq(f.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	reason := "too expensive"
	updated, err := svc.UpdateStatus(context.Background(), q.ID, UpdateStatusRequest{Status: "rejected", RejectionReason: &reason})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if updated.Status != StatusRejected {
		t.Fatalf("status = %s, want rejected", updated.Status)
	}
	if updated.RejectedAt == nil {
		t.Fatal("rejected_at not set")
	}
	if updated.RejectionReason == nil || *updated.RejectionReason != reason {
		t.Fatalf("rejection_reason = %v, want %q", updated.RejectionReason, reason)
	}
}

func TestUpdateStatusSecondDecisionFails(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")
	q, err := svc.Create(context.Background(), "maker", createReq(f.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), q.ID, UpdateStatusRequest{Status: "accepted"}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), q.ID, UpdateStatusRequest{Status: "rejected"}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestUpdateStatusRejectsSilentNoOps(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")
	q, err := svc.Create(context.Background(), "maker", createReq(f.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), q.ID, UpdateStatusRequest{Status: "pending"}); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("pending: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), q.ID, UpdateStatusRequest{Status: "shipped"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status: err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusMissingQuote(t *testing.T) {
	svc, _ := testService(t)
	if _, err := svc.UpdateStatus(context.Background(), 404, UpdateStatusRequest{Status: "accepted"}); !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("err = %v, want ErrQuoteNotFound", err)
	}
}

func TestStats(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")

	ids := make([]int64, 0, 3)
	for i := 0; i < 3; i++ {
		q, err := svc.Create(context.Background(), "maker", createReq(f.ID))
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ids = append(ids, q.ID)
	}
	if _, err := svc.UpdateStatus(context.Background(), ids[0], UpdateStatusRequest{Status: "accepted"}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), ids[1], UpdateStatusRequest{Status: "rejected"}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	stats, err := svc.Stats(context.Background(), "maker")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalQuotes != 3 || stats.SentQuotes != 1 || stats.AcceptedQuotes != 1 || stats.RejectedQuotes != 1 {
		t.Fatalf("stats = %+v", stats)
	}

	other, err := svc.Stats(context.Background(), "someone-else")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if other.TotalQuotes != 0 {
		t.Fatalf("stats leaked across creators: %+v", other)
	}
}

func TestListByFile(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")
	other := &file.File{
		ObjectKey:    "stp/20260101_000000_test_flange.step",
		OriginalName: "flange.step",
		ContentType:  "application/stp",
		Version:      1,
		UploadedBy:   "buyer1",
		QuantityUnit: "pieces",
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("seed file: %v", err)
	}

	for _, id := range []int64{f.ID, f.ID, other.ID} {
		if _, err := svc.Create(context.Background(), "maker", createReq(id)); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	quotes, err := svc.ListByFile(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("list by file: %v", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("quotes = %d, want 2", len(quotes))
	}
	for _, q := range quotes {
		if q.FileID != f.ID {
			t.Fatalf("quote for file %d leaked in", q.FileID)
		}
	}
}

func TestListFiltersByStatus(t *testing.T) {
	svc, db := testService(t)
	f := seedFile(t, db, "buyer1")

	q1, err := svc.Create(context.Background(), "maker", createReq(f.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), "maker", createReq(f.ID)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), q1.ID, UpdateStatusRequest{Status: "accepted"}); err != nil {
		t.Fatalf("accept: %v", err)
	}

	quotes, total, err := svc.List(context.Background(), "maker", "accepted", 10, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(quotes) != 1 || quotes[0].ID != q1.ID {
		t.Fatalf("list = %d quotes, total %d", len(quotes), total)
	}

	if _, _, err := svc.List(context.Background(), "maker", "bogus", 10, 0); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
