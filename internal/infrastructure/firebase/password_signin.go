package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"supportdesk/pkg/errors"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	LocalID      string `json:"localId"`
	Error        *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for an ID token through the
// identity toolkit REST endpoint. The admin SDK has no password sign-in, so
// this is the only way a server can authenticate on the admin's behalf.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, string, error) {
	if f.apiKey == "" {
		return "", "", errors.Internal("Firebase API key is not configured", nil)
	}

	body, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", "", errors.Internal("Failed to encode sign-in request", err)
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, f.apiKey)
	resp, err := f.httpClient.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", errors.Internal("Sign-in request failed", err)
	}
	defer resp.Body.Close()

	var result signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", errors.Internal("Failed to decode sign-in response", err)
	}

	if resp.StatusCode != http.StatusOK || result.Error != nil {
		message := ""
		if result.Error != nil {
			message = result.Error.Message
		}
		return "", "", mapSignInError(message)
	}

	return result.IDToken, result.LocalID, nil
}

// mapSignInError translates identity toolkit error strings into the closed
// set of sign-in failure codes. Anything unrecognized maps to a generic
// invalid-credentials error so the login form never leaks backend detail.
func mapSignInError(message string) error {
	switch {
	case strings.HasPrefix(message, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(message, "INVALID_PASSWORD"),
		strings.HasPrefix(message, "INVALID_LOGIN_CREDENTIALS"):
		return errors.InvalidCredentials(nil)
	case strings.HasPrefix(message, "USER_DISABLED"):
		return errors.UserDisabled(nil)
	case strings.HasPrefix(message, "INVALID_EMAIL"):
		return errors.InvalidEmail(nil)
	case strings.HasPrefix(message, "OPERATION_NOT_ALLOWED"),
		strings.HasPrefix(message, "PASSWORD_LOGIN_DISABLED"):
		return errors.OperationNotAllowed(nil)
	case strings.HasPrefix(message, "TOO_MANY_ATTEMPTS_TRY_LATER"):
		return errors.New("TOO_MANY_ATTEMPTS", "Too many attempts, try again later", http.StatusTooManyRequests, nil)
	}
	return errors.InvalidCredentials(nil)
}
