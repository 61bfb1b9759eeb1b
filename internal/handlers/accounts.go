package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/tmbewe/bccargo/internal/auth"
	"github.com/tmbewe/bccargo/internal/db"
)

const minPasswordLength = 8

func (h *HandlerSet) HandleRegister(w http.ResponseWriter, req *http.Request) {

	if h.registrationCode == "" {
		writeError(w, http.StatusInternalServerError, "Server not configured for registration")
		return
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var data struct {
		Email            string `json:"email"`
		Password         string `json:"password"`
		Confirm          string `json:"confirm"`
		RegistrationCode string `json:"registrationCode"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(data.Email))
	code := strings.TrimSpace(data.RegistrationCode)

	if email == "" || data.Password == "" || data.Confirm == "" || code == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if data.Password != data.Confirm {
		writeError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}
	if len(data.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "Password must be at least 8 characters")
		return
	}
	if code != h.registrationCode {
		writeError(w, http.StatusUnauthorized, "Invalid registration code")
		return
	}

	hashed, err := auth.HashPassword(data.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	apiToken, err := auth.NewAPIToken()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	err = h.accounts.CreateAccount(req.Context(), email, hashed, apiToken)
	if err != nil {
		var accountExists *db.AccountExistsError
		if errors.As(err, &accountExists) {
			writeError(w, http.StatusConflict, "Account already exists for that email")
			return
		}
		logger.Errorf("Failed to create admin account: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Account created",
		"email":   email,
		"token":   apiToken,
	})
}

func (h *HandlerSet) HandleLogin(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var data struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(data.Email))
	if email == "" || data.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	account, err := h.accounts.GetAccount(req.Context(), email)
	if err != nil {
		var notFound *db.AccountNotFoundError
		if errors.As(err, &notFound) {
			// same answer as a wrong password, the email must not leak
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.Errorf("Failed to login: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	if !auth.CheckPasswordHash(data.Password, account.PasswordHash) {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response := map[string]string{
		"email": account.Email,
		"token": account.APIToken,
	}

	if len(h.sessionSecret) > 0 {
		sessionToken, err := auth.BuildSessionToken(account.Email, h.sessionSecret, h.sessionTTL)
		if err != nil {
			logger.Errorf("Failed to build session token: %s", err.Error())
		} else {
			response["sessionToken"] = sessionToken
		}
	}

	writeJSON(w, http.StatusOK, response)
}
