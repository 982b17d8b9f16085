package usecases

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/repositories"
	"BE-HOTEL-ADMIN/app/utils"
	"BE-HOTEL-ADMIN/app/validation"
	"golang.org/x/crypto/bcrypt"
)

const passwordPolicy = "password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"

type AuthUsecase interface {
	Register(req entities.Register) (entities.Account, error)
	Login(req entities.Login) (entities.TokenPair, error)
	Refresh(refreshToken string) (entities.TokenPair, error)
	Me(id int) (entities.Account, error)
	ChangePassword(id int, req entities.ChangePassword) error
	PasswordReset(req entities.ResetRequest) (string, error)
	PasswordResetId(token string, req entities.PasswordConfirmReset) error
	// EnsureAdmin creates the admin account once. The password policy is not applied.
	EnsureAdmin(username, email, password string) error
}

type authUsecase struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenManager
	mailer      utils.Mailer
}

func NewAuthUsecase(accountRepo repositories.AccountRepository, tokens *utils.TokenManager, mailer utils.Mailer) AuthUsecase {
	return &authUsecase{accountRepo: accountRepo, tokens: tokens, mailer: mailer}
}

// --- REGISTER ---
func (u *authUsecase) Register(req entities.Register) (entities.Account, error) {
	if errs := validation.Struct(req); len(errs) > 0 {
		return entities.Account{}, invalid(errs)
	}
	if !isValidPassword(req.Password) {
		return entities.Account{}, badRequest(passwordPolicy)
	}
	return u.create(req, entities.RoleUser)
}

func (u *authUsecase) create(req entities.Register, role string) (entities.Account, error) {
	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		return entities.Account{}, internal()
	}
	account, err := u.accountRepo.Register(entities.Account{
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hashedPassword,
		Role:         role,
		Status:       entities.StatusActive,
	})
	if errors.Is(err, repositories.ErrDuplicate) {
		return entities.Account{}, &UseCaseError{Code: http.StatusConflict, Message: err.Error()}
	}
	if err != nil {
		return entities.Account{}, internal()
	}
	return account, nil
}

func (u *authUsecase) EnsureAdmin(username, email, password string) error {
	if _, err := u.accountRepo.GetByUsername(username); err == nil {
		return nil
	}
	_, err := u.create(entities.Register{Username: username, Email: email, Password: password, Name: "Administrator"}, entities.RoleAdmin)
	return err
}

// --- LOGIN ---
func (u *authUsecase) Login(req entities.Login) (entities.TokenPair, error) {
	var (
		account entities.Account
		err     error
	)
	// login pakai email atau username
	if isEmail(req.Username) {
		account, err = u.accountRepo.GetByEmail(req.Username)
	} else {
		account, err = u.accountRepo.GetByUsername(req.Username)
	}
	if err != nil {
		return entities.TokenPair{}, unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return entities.TokenPair{}, unauthorized("invalid credentials")
	}
	if account.Status != entities.StatusActive {
		return entities.TokenPair{}, unauthorized("account is not active")
	}

	pair, err := u.tokens.GeneratePair(account)
	if err != nil {
		return entities.TokenPair{}, internal()
	}
	return pair, nil
}

func (u *authUsecase) Refresh(refreshToken string) (entities.TokenPair, error) {
	claims, err := u.tokens.Parse(refreshToken, entities.TokenRefresh)
	if err != nil {
		return entities.TokenPair{}, unauthorized("invalid refresh token")
	}
	account, err := u.accountRepo.GetByID(claims.UserID)
	if err != nil {
		return entities.TokenPair{}, unauthorized("invalid refresh token")
	}
	pair, err := u.tokens.GeneratePair(account)
	if err != nil {
		return entities.TokenPair{}, internal()
	}
	return pair, nil
}

func (u *authUsecase) Me(id int) (entities.Account, error) {
	account, err := u.accountRepo.GetByID(id)
	if err != nil {
		return account, lookupError(err, "account not found")
	}
	return account, nil
}

// --- PASSWORD ---
func (u *authUsecase) ChangePassword(id int, req entities.ChangePassword) error {
	if errs := validation.Struct(req); len(errs) > 0 {
		return invalid(errs)
	}
	account, err := u.accountRepo.GetByID(id)
	if err != nil {
		return lookupError(err, "account not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.OldPassword)); err != nil {
		return invalid(validation.Errors{}.Add("old_password", "is incorrect"))
	}
	return u.setPassword(id, req.Password)
}

// PasswordReset mails a reset link and returns the token, which the mock API also
// includes in its response.
func (u *authUsecase) PasswordReset(req entities.ResetRequest) (string, error) {
	account, err := u.accountRepo.GetByEmail(req.Email)
	if err != nil {
		return "", notFound("email not found")
	}
	token, err := u.tokens.Generate(account, entities.TokenReset)
	if err != nil {
		return "", internal()
	}
	if err := u.mailer.SendResetEmail(account.Email, token); err != nil {
		log.Printf("[ERROR] send reset email to %s: %v", account.Email, err)
		return "", &UseCaseError{Code: http.StatusBadGateway, Message: "failed to send reset email"}
	}
	return token, nil
}

func (u *authUsecase) PasswordResetId(token string, req entities.PasswordConfirmReset) error {
	claims, err := u.tokens.Parse(token, entities.TokenReset)
	if err != nil {
		return unauthorized("invalid or expired reset token")
	}
	if req.NewPassword != req.ConfirmPassword {
		return invalid(validation.Errors{}.Add("confirm_password", "must match new_password"))
	}
	return u.setPassword(claims.UserID, req.NewPassword)
}

func (u *authUsecase) setPassword(id int, password string) error {
	if !isValidPassword(password) {
		return badRequest(passwordPolicy)
	}
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return internal()
	}
	rowsAffected, err := u.accountRepo.UpdatePassword(id, hashedPassword)
	if err != nil {
		return internal()
	}
	if rowsAffected == 0 {
		return notFound("account not found")
	}
	return nil
}

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func isValidPassword(password string) bool {
	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case 'A' <= char && char <= 'Z':
			hasUpper = true
		case 'a' <= char && char <= 'z':
			hasLower = true
		case '0' <= char && char <= '9':
			hasNumber = true
		case (char >= 33 && char <= 47) || (char >= 58 && char <= 64) || (char >= 91 && char <= 96) || (char >= 123 && char <= 126):
			hasSpecial = true
		}
	}
	return hasUpper && hasLower && hasNumber && hasSpecial
}

func isEmail(input string) bool {
	return strings.ContainsRune(input, '@')
}
