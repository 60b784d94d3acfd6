package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/SSG3800/Retail-POS-System/internal/auth"
)

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LoginHandler godoc
// @Summary Open a till session with the shared password
// @Description Returns a bearer token; must_change_password is true while the factory default is in place
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "till password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 423 {string} string "Locked"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	addr := clientAddr(r)
	blocked, err := lockoutStore.Blocked(r.Context(), addr)
	if err != nil {
		log.Printf("lockout check failed: %v", err)
	}
	if blocked {
		http.Error(w, "too many failed attempts, try again later", http.StatusLocked)
		return
	}

	ok, err := gate.Verify(req.Password)
	if err != nil {
		http.Error(w, "could not verify password", http.StatusInternalServerError)
		return
	}
	if !ok {
		if _, err := lockoutStore.Fail(r.Context(), addr); err != nil {
			log.Printf("lockout update failed: %v", err)
		}
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	_ = lockoutStore.Reset(r.Context(), addr)

	token, err := auth.GenerateToken()
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	mustChange, err := gate.MustChange()
	if err != nil {
		http.Error(w, "could not read settings", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(LoginResult{Token: token, MustChangePassword: mustChange}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// ChangePasswordHandler godoc
// @Summary Change the shared till password
// @Tags auth
// @Accept json
// @Produce json
// @Param passwords body ChangePasswordRequest true "old and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Old password wrong"
// @Failure 500 {string} string "Internal error"
// @Router /password [post]
// @Security BearerAuth
func ChangePasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := gate.ChangePassword(req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrWrongPassword):
			http.Error(w, "old password is not correct", http.StatusUnauthorized)
		case errors.Is(err, auth.ErrEmptyPassword):
			http.Error(w, "new password cannot be empty", http.StatusBadRequest)
		default:
			http.Error(w, "could not change password", http.StatusInternalServerError)
		}
		return
	}

	if err := json.NewEncoder(w).Encode(map[string]string{"message": "password changed"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
