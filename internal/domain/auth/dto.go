package auth

import "github.com/gastrodesk/backoffice-api/internal/pkg/validator"

const emailFormatMessage = "email must be a valid email address, e.g. user@example.com"

func validateEmail(errs validator.ValidationErrors, email string) validator.ValidationErrors {
	if validator.IsEmpty(email) {
		return append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if len(email) > 254 {
		return append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}
	if !validator.IsValidEmail(email) {
		return append(errs, validator.ValidationError{
			Field:   "email",
			Message: emailFormatMessage,
		})
	}
	return errs
}

func validatePassword(errs validator.ValidationErrors, field, password string) validator.ValidationErrors {
	if validator.IsEmpty(password) {
		return append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
	}
	if len(password) < 8 {
		return append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be at least 8 characters long",
		})
	}
	if len(password) > 72 {
		return append(errs, validator.ValidationError{
			Field:   field,
			Message: field + " must not exceed 72 characters",
		})
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateEmail(errs, r.Email)
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

func (r *ForgotPasswordRequest) Validate() error {
	errs := validateEmail(nil, r.Email)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	} else if len(r.Token) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token must not exceed 255 characters",
		})
	}

	errs = validatePassword(errs, "password", r.Password)
	if validator.IsEmpty(r.ConfirmPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password is required",
		})
	} else if r.ConfirmPassword != r.Password {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "password and confirm_password do not match",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
	SessionID            string `json:"session_id"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
