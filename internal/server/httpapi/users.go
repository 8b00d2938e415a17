package httpapi

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
	"github.com/dmitrijs2005/userconsole/internal/server/services"
)

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	DOB      string `json:"dob"`
	Phone    string `json:"phone"`
}

type updateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	DOB   string `json:"dob"`
	Phone string `json:"phone"`
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.listUsers"

	list, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	render.JSON(w, r, toUsers(list))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.createUser"
	log := h.logger(r, op)

	var req createUserRequest
	if !h.decode(w, r, op, &req) {
		return
	}

	user, err := h.svc.Create(r.Context(), services.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		DOB:      req.DOB,
		Phone:    req.Phone,
	})
	if err != nil {
		h.fail(w, r, op, err)
		return
	}

	log.Info(r.Context(), "user created", "user_id", user.ID)
	writeMessage(w, r, http.StatusCreated, msgUserCreated)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.updateUser"

	var req updateUserRequest
	if !h.decode(w, r, op, &req) {
		return
	}

	list, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), services.UserPatch{
		Name:  req.Name,
		Email: req.Email,
		DOB:   req.DOB,
		Phone: req.Phone,
	})
	h.respondDirectory(w, r, op, list, err)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.deleteUser"

	list, err := h.svc.Delete(r.Context(), chi.URLParam(r, "id"))
	h.respondDirectory(w, r, op, list, err)
}

func (h *Handler) respondDirectory(w http.ResponseWriter, r *http.Request, op string, list []models.User, err error) {
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	render.JSON(w, r, toUsers(list))
}

// decode reads and validates a JSON body, answering 400 itself on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		h.logger(r, op).Warn(r.Context(), "failed to decode request body", logging.Err(err))
		writeMessage(w, r, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeMessage(w, r, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := statusOf(err)
	log := h.logger(r, op)
	if status >= http.StatusInternalServerError {
		log.Error(r.Context(), "request failed", logging.Err(err))
	} else {
		log.Info(r.Context(), "request rejected", "status", status, logging.Err(err))
	}
	writeMessage(w, r, status, msg)
}
