package quotenotif

import (
	"context"
	"errors"
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
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
	if err := db.AutoMigrate(&QuoteNotification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seed(t *testing.T, svc *Service, db *gorm.DB, quoteID int64, sentTo string) {
	t.Helper()
	if err := svc.NotifyQuoteSent(db, quoteID, 1, "maker", sentTo, "bracket"); err != nil {
		t.Fatalf("notify: %v", err)
	}
}

func TestListScopedToRecipient(t *testing.T) {
	db := testDB(t)
	svc := NewService(NewRepository(db))

	seed(t, svc, db, 1, "buyer1")
	seed(t, svc, db, 2, "buyer1")
	seed(t, svc, db, 3, "buyer2")

	list, total, unread, err := svc.List(context.Background(), "buyer1", 50, 0, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || unread != 2 || len(list) != 2 {
		t.Fatalf("buyer1: total=%d unread=%d len=%d, want 2/2/2", total, unread, len(list))
	}
	for _, n := range list {
		if n.SentTo != "buyer1" {
			t.Fatalf("leaked notification for %s", n.SentTo)
		}
	}

	count, err := svc.UnreadCount(context.Background(), "buyer2")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 1 {
		t.Fatalf("buyer2 unread = %d, want 1", count)
	}
}

func TestMarkAllReadScopedToRecipient(t *testing.T) {
	db := testDB(t)
	svc := NewService(NewRepository(db))

	seed(t, svc, db, 1, "buyer1")
	seed(t, svc, db, 2, "buyer1")
	seed(t, svc, db, 3, "buyer2")

	count, err := svc.MarkAllRead(context.Background(), "buyer1")
	if err != nil {
		t.Fatalf("mark all: %v", err)
	}
	if count != 2 {
		t.Fatalf("count = %d, want 2", count)
	}

	unread, err := svc.UnreadCount(context.Background(), "buyer2")
	if err != nil {
		t.Fatalf("unread: %v", err)
	}
	if unread != 1 {
		t.Fatalf("buyer2 affected by buyer1's mark-all: unread = %d", unread)
	}
}

func TestMarkReadMissing(t *testing.T) {
	db := testDB(t)
	svc := NewService(NewRepository(db))

	if err := svc.MarkRead(context.Background(), 404); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("err = %v, want ErrNotificationNotFound", err)
	}
}

func TestDeleteScopedToRecipient(t *testing.T) {
	db := testDB(t)
	svc := NewService(NewRepository(db))

	seed(t, svc, db, 1, "buyer1")

	var n QuoteNotification
	if err := db.First(&n).Error; err != nil {
		t.Fatalf("fetch: %v", err)
	}

	// Another buyer cannot delete it, even with the right id.
	if err := svc.Delete(context.Background(), n.ID, "buyer2"); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("err = %v, want ErrNotificationNotFound for foreign recipient", err)
	}
	var remaining int64
	db.Model(&QuoteNotification{}).Count(&remaining)
	if remaining != 1 {
		t.Fatal("foreign delete removed the notification")
	}

	if err := svc.Delete(context.Background(), n.ID, "buyer1"); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	db.Model(&QuoteNotification{}).Count(&remaining)
	if remaining != 0 {
		t.Fatal("owner delete left the notification behind")
	}
}

func TestDeleteAllScopedToRecipient(t *testing.T) {
	db := testDB(t)
	svc := NewService(NewRepository(db))

	seed(t, svc, db, 1, "buyer1")
	seed(t, svc, db, 2, "buyer2")

	count, err := svc.DeleteAll(context.Background(), "buyer1")
	if err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	var remaining int64
	db.Model(&QuoteNotification{}).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("remaining = %d, want buyer2's notification intact", remaining)
	}
}
