package notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type listResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

// List handles GET /notifications: the caller's inbox, newest first.
// Optional ?limit= caps the page.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	var limit int64
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil || n < 0 {
			httpjson.WriteError(w, apierror.Validation("limit must be a non-negative integer"))
			return
		}
		limit = n
	}

	list, err := h.Store.ListByUser(r.Context(), userID, limit)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "list notifications", err)
		return
	}
	unread, err := h.Store.CountUnread(r.Context(), userID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "count unread", err)
		return
	}
	httpjson.Write(w, http.StatusOK, listResponse{Notifications: list, Unread: unread})
}

// MarkRead handles PATCH /notifications/{id}/read. Owner only.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.WriteError(w, apierror.Validation("id is not a valid id"))
		return
	}

	if err := h.Store.MarkRead(r.Context(), id, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("notification"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "mark notification read", err)
		return
	}
	httpjson.WriteMessage(w, http.StatusOK, "marked read")
}

type markAllResponse struct {
	Marked int64 `json:"marked"`
}

// MarkAllRead handles POST /notifications/read-all.
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}
	n, err := h.Store.MarkAllRead(r.Context(), userID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "mark all read", err)
		return
	}
	httpjson.Write(w, http.StatusOK, markAllResponse{Marked: n})
}

// GetPreferences handles GET /notifications/preferences.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}
	prefs, err := h.Store.GetPrefs(r.Context(), userID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "load notification prefs", err)
		return
	}
	httpjson.Write(w, http.StatusOK, prefs)
}

type setPreferencesRequest struct {
	InApp bool `json:"inApp"`
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

// SetPreferences handles PUT /notifications/preferences.
func (h *Handler) SetPreferences(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}
	var req setPreferencesRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	prefs := models.NotificationPrefs{
		UserID: userID,
		InApp:  req.InApp,
		Email:  req.Email,
		Push:   req.Push,
	}
	if err := h.Store.SetPrefs(r.Context(), prefs); err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "save notification prefs", err)
		return
	}
	httpjson.Write(w, http.StatusOK, prefs)
}
