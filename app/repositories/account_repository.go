package repositories

import (
	"errors"
	"strings"
	"time"

	"BE-HOTEL-ADMIN/app/entities"
)

var ErrDuplicate = errors.New("username or email already registered")

// AccountRepository holds login credentials. Accounts live in memory only so password
// hashes never reach a snapshot.
type AccountRepository interface {
	GetByUsername(username string) (entities.Account, error)
	GetByEmail(email string) (entities.Account, error)
	GetByID(id int) (entities.Account, error)
	Register(account entities.Account) (entities.Account, error)
	UpdatePassword(id int, hashedPassword string) (int64, error)
}

type accountRepository struct {
	accounts *table[entities.Account]
}

func NewAccountRepository() AccountRepository {
	t, _ := newTable[entities.Account](nil, "", nil,
		func(a entities.Account) int { return a.ID },
		func(a entities.Account, id int) entities.Account { a.ID = id; return a })
	return &accountRepository{accounts: t}
}

func (r *accountRepository) find(match func(entities.Account) bool) (entities.Account, error) {
	for _, a := range r.accounts.all() {
		if match(a) {
			return a, nil
		}
	}
	return entities.Account{}, ErrNotFound
}

func (r *accountRepository) GetByUsername(username string) (entities.Account, error) {
	return r.find(func(a entities.Account) bool { return a.Username == username })
}

func (r *accountRepository) GetByEmail(email string) (entities.Account, error) {
	return r.find(func(a entities.Account) bool { return strings.EqualFold(a.Email, email) })
}

func (r *accountRepository) GetByID(id int) (entities.Account, error) {
	return r.accounts.get(id)
}

// Register stores a new account, rejecting a taken username or email.
func (r *accountRepository) Register(account entities.Account) (entities.Account, error) {
	now := time.Now().Format(time.RFC3339)
	account.CreatedAt, account.UpdatedAt = now, now
	return r.accounts.insert(account, func(rows []entities.Account) error {
		for _, a := range rows {
			if a.Username == account.Username || strings.EqualFold(a.Email, account.Email) {
				return ErrDuplicate
			}
		}
		return nil
	})
}

func (r *accountRepository) UpdatePassword(id int, hashedPassword string) (int64, error) {
	account, err := r.accounts.get(id)
	if err != nil {
		return 0, nil
	}
	account.PasswordHash = hashedPassword
	account.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.accounts.update(id, account, nil)
}
