package ngos

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	ngoprofilestore "github.com/volunhub/volunhub/internal/app/store/ngoprofiles"
	"github.com/volunhub/volunhub/internal/app/system/apierror"
	"github.com/volunhub/volunhub/internal/app/system/authz"
	"github.com/volunhub/volunhub/internal/app/system/httpjson"
	"github.com/volunhub/volunhub/internal/app/system/normalize"
	"github.com/volunhub/volunhub/internal/app/system/sanitize"
	"github.com/volunhub/volunhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

type createProfileRequest struct {
	Name               string               `json:"name"`
	Email              string               `json:"email"`
	Phone              string               `json:"phone"`
	Description        string               `json:"description"`
	Website            string               `json:"website"`
	RegistrationNumber string               `json:"registrationNumber"`
	FocusAreas         []string             `json:"focusAreas"`
	Address            models.Address       `json:"address"`
	ContactPerson      models.ContactPerson `json:"contactPerson"`
	Documents          []string             `json:"documents"`
}

// CreateProfile handles POST /ngos: an NGO account registering its
// organization detail. One profile per account; approval stays on the
// user record and is untouched here.
func (h *Handler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	if !authz.IsNGO(r) {
		httpjson.WriteError(w, apierror.Forbidden("only NGO accounts can create an organization profile"))
		return
	}
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.WriteError(w, apierror.Unauthorized("sign in required"))
		return
	}

	var req createProfileRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}
	for _, doc := range req.Documents {
		if doc == "" {
			httpjson.WriteError(w, apierror.Validation("document URLs must be non-empty"))
			return
		}
	}

	created, err := h.Profiles.Create(r.Context(), models.NGOProfile{
		UserID:             userID,
		Name:               sanitize.Text(req.Name),
		Email:              req.Email,
		Phone:              sanitize.Text(req.Phone),
		Description:        sanitize.Description(req.Description),
		Website:            sanitize.Text(req.Website),
		RegistrationNumber: sanitize.Text(req.RegistrationNumber),
		FocusAreas:         normalize.StringSlice(req.FocusAreas),
		Address:            sanitizeAddress(req.Address),
		ContactPerson:      sanitizeContact(req.ContactPerson),
		Documents:          normalize.StringSlice(req.Documents),
	})
	if err != nil {
		if errors.Is(err, ngoprofilestore.ErrDuplicate) {
			httpjson.WriteError(w, apierror.Duplicate(err.Error()))
			return
		}
		httpjson.WriteError(w, apierror.Validation(err.Error()))
		return
	}
	httpjson.Write(w, http.StatusCreated, created)
}

type patchProfileRequest struct {
	Description   *string               `json:"description"`
	Website       *string               `json:"website"`
	Phone         *string               `json:"phone"`
	FocusAreas    *[]string             `json:"focusAreas"`
	Address       *models.Address       `json:"address"`
	ContactPerson *models.ContactPerson `json:"contactPerson"`
	Documents     *[]string             `json:"documents"`
}

// Patch handles PATCH /ngos/{id}: an allow-listed partial update by the
// owning NGO. Identity fields (email, registration number) and approval
// state are not patchable.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok || !authz.IsNGO(r) {
		httpjson.WriteError(w, apierror.Forbidden("only the owning NGO can edit its profile"))
		return
	}
	if chi.URLParam(r, "id") != userID.Hex() {
		httpjson.WriteError(w, apierror.Forbidden("only the owning NGO can edit its profile"))
		return
	}

	var req patchProfileRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.WriteError(w, err)
		return
	}

	current, err := h.Profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("ngo profile"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "load ngo profile", err)
		return
	}

	upd := ngoprofilestore.Update{
		Name:          current.Name,
		Email:         current.Email,
		Phone:         current.Phone,
		Description:   current.Description,
		Website:       current.Website,
		FocusAreas:    current.FocusAreas,
		Address:       current.Address,
		ContactPerson: current.ContactPerson,
		Documents:     current.Documents,
	}
	if req.Description != nil {
		upd.Description = sanitize.Description(*req.Description)
	}
	if req.Website != nil {
		upd.Website = sanitize.Text(*req.Website)
	}
	if req.Phone != nil {
		upd.Phone = sanitize.Text(*req.Phone)
	}
	if req.FocusAreas != nil {
		upd.FocusAreas = normalize.StringSlice(*req.FocusAreas)
	}
	if req.Address != nil {
		upd.Address = sanitizeAddress(*req.Address)
	}
	if req.ContactPerson != nil {
		upd.ContactPerson = sanitizeContact(*req.ContactPerson)
	}
	if req.Documents != nil {
		for _, doc := range *req.Documents {
			if doc == "" {
				httpjson.WriteError(w, apierror.Validation("document URLs must be non-empty"))
				return
			}
		}
		upd.Documents = normalize.StringSlice(*req.Documents)
	}

	if err := h.Profiles.UpdateByUserID(r.Context(), userID, upd); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.WriteError(w, apierror.NotFound("ngo profile"))
			return
		}
		httpjson.LogAndWriteError(w, r, h.Log, "patch ngo profile", err)
		return
	}

	updated, err := h.Profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		httpjson.LogAndWriteError(w, r, h.Log, "reload ngo profile", err)
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

func sanitizeAddress(a models.Address) models.Address {
	return models.Address{
		Street:     sanitize.Text(a.Street),
		City:       sanitize.Text(a.City),
		State:      sanitize.Text(a.State),
		Country:    sanitize.Text(a.Country),
		PostalCode: sanitize.Text(a.PostalCode),
	}
}

func sanitizeContact(c models.ContactPerson) models.ContactPerson {
	return models.ContactPerson{
		Name:        sanitize.Text(c.Name),
		Phone:       sanitize.Text(c.Phone),
		Designation: sanitize.Text(c.Designation),
	}
}
