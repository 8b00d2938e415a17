package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	id, ok := IdentityFrom(r.Context())
	if !ok {
		writeMessage(w, r, http.StatusUnauthorized, msgUnauthorized)
		return
	}
	render.JSON(w, r, sessionResponse{ID: id.UserID, Name: id.Name, Email: id.Email})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.login"
	log := h.logger(r, op)

	if err := r.ParseForm(); err != nil {
		log.Warn(r.Context(), "failed to parse form", logging.Err(err))
		writeMessage(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}
	username, password := r.PostFormValue("username"), r.PostFormValue("password")
	if username == "" || password == "" {
		writeMessage(w, r, http.StatusUnauthorized, msgBadCredentials)
		return
	}

	token, err := h.svc.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			log.Info(r.Context(), "login rejected")
			writeMessage(w, r, http.StatusUnauthorized, msgBadCredentials)
			return
		}
		log.Error(r.Context(), "login failed", logging.Err(err))
		writeMessage(w, r, http.StatusInternalServerError, msgInternal)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, h.svc.SessionTTL()))
	writeMessage(w, r, http.StatusOK, msgLoggedIn)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	const op = "httpapi.signup"
	log := h.logger(r, op)

	var req signupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Warn(r.Context(), "failed to decode request body", logging.Err(err))
		writeMessage(w, r, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeMessage(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.svc.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		status, msg := statusOf(err)
		log.Info(r.Context(), "signup rejected", "status", status, logging.Err(err))
		writeMessage(w, r, status, msg)
		return
	}

	log.Info(r.Context(), "user signed up", "user_id", user.ID)
	writeMessage(w, r, http.StatusCreated, msgSignedUp)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.expiredCookie())
	writeMessage(w, r, http.StatusOK, msgLoggedOut)
}
