package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/liamo132/currently-server/internal/auth"
	"github.com/liamo132/currently-server/internal/database"
	"github.com/liamo132/currently-server/internal/types"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// register creates a new account and issues a token, so registration
// doubles as the first login.
func (s *CurrentlyApp) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		errResp := NewValidationError("email, username and password are required")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	emailExists, err := s.db.AccountExistsByEmail(req.Email)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	if emailExists {
		errResp := NewConflictError("email already in use")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	usernameExists, err := s.db.AccountExistsByUsername(req.Username)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}
	if usernameExists {
		errResp := NewConflictError("username already in use")
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	pwdHash, err := auth.HashPassword(req.Password)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateAccountParams{
		Username:     req.Username,
		EmailAddress: req.Email,
		PasswordHash: pwdHash,
	}

	newAccount, err := s.db.CreateAccount(params)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	token, err := s.tokens.Issue(newAccount.EmailAddress)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.metrics.RecordRegistration()

	s.writeJson(w, http.StatusCreated, types.AuthResponse{
		Token: token,
		User:  toUser(newAccount),
	})
}

// login verifies credentials and issues a token. Unknown email and
// wrong password are deliberately indistinguishable to the caller.
func (s *CurrentlyApp) login(w http.ResponseWriter, r *http.Request) {
	var lr LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&lr); err != nil {
		errResp := NewBadRequestError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	account, err := s.db.GetAccountByEmail(lr.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.metrics.RecordLogin(false)
			errResp := NewUnauthorizedError()
			s.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !auth.VerifyPassword(account.PasswordHash, lr.Password) {
		s.metrics.RecordLogin(false)
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	token, err := s.tokens.Issue(account.EmailAddress)
	if err != nil {
		errResp := NewInternalServerError(err)
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.metrics.RecordLogin(true)

	s.writeJson(w, http.StatusOK, types.AuthResponse{
		Token: token,
		User:  toUser(account),
	})
}

func (s *CurrentlyApp) session(w http.ResponseWriter, r *http.Request) {
	account, ok := AccountFromContext(r.Context())
	if !ok {
		errResp := NewUnauthorizedError()
		s.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	s.writeJson(w, http.StatusOK, toUser(account))
}
