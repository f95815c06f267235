package notifications_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/volunhub/volunhub/internal/app/features/notifications"
	"github.com/volunhub/volunhub/internal/domain/models"
	"github.com/volunhub/volunhub/internal/testutil"
	"go.uber.org/zap"
)

func TestList_ScopedToCallerWithUnreadCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := notifications.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	me := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)
	other := fix.CreateVolunteer(ctx, "Ben", "ben@example.com", nil)
	fix.CreateNotification(ctx, me.ID, models.NotifyOther, "mine one")
	fix.CreateNotification(ctx, me.ID, models.NotifyApproval, "mine two")
	fix.CreateNotification(ctx, other.ID, models.NotifyOther, "not mine")

	r := testutil.AsUser(httptest.NewRequest("GET", "/notifications", nil), me)
	w := httptest.NewRecorder()
	h.List(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Notifications []models.Notification `json:"notifications"`
		Unread        int64                 `json:"unread"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Notifications) != 2 || resp.Unread != 2 {
		t.Fatalf("expected 2 own notifications, got %+v", resp)
	}
	for _, n := range resp.Notifications {
		if strings.Contains(n.Message, "not mine") {
			t.Fatalf("leaked foreign notification: %+v", n)
		}
	}
}

func TestMarkRead_ForeignNotificationNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := notifications.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	me := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)
	other := fix.CreateVolunteer(ctx, "Ben", "ben@example.com", nil)
	n := fix.CreateNotification(ctx, other.ID, models.NotifyOther, "not mine")

	r := httptest.NewRequest("PATCH", "/notifications/"+n.ID.Hex()+"/read", nil)
	r = testutil.WithChiURLParam(testutil.AsUser(r, me), "id", n.ID.Hex())
	w := httptest.NewRecorder()
	h.MarkRead(w, r)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestPreferences_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fix := testutil.NewFixtures(t, db)
	h := notifications.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	me := fix.CreateVolunteer(ctx, "Asha", "asha@example.com", nil)

	r := testutil.AsUser(httptest.NewRequest("GET", "/notifications/preferences", nil), me)
	w := httptest.NewRecorder()
	h.GetPreferences(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var prefs models.NotificationPrefs
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode defaults: %v", err)
	}
	if !prefs.InApp || !prefs.Email || !prefs.Push {
		t.Fatalf("expected default prefs all on, got %+v", prefs)
	}

	r = httptest.NewRequest("PUT", "/notifications/preferences",
		strings.NewReader(`{"inApp":true,"email":false,"push":false}`))
	r = testutil.AsUser(r, me)
	w = httptest.NewRecorder()
	h.SetPreferences(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	r = testutil.AsUser(httptest.NewRequest("GET", "/notifications/preferences", nil), me)
	w = httptest.NewRecorder()
	h.GetPreferences(w, r)
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode saved: %v", err)
	}
	if !prefs.InApp || prefs.Email || prefs.Push {
		t.Fatalf("expected saved prefs, got %+v", prefs)
	}
}
