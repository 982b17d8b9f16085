package repositories

import (
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/storage"
)

// UserRepository stores the guest profiles listed on the users screen.
type UserRepository interface {
	GetAll() ([]entities.User, error)
	GetByID(id int) (entities.User, error)
	Create(user entities.User) (entities.User, error)
	Update(id int, user entities.User) (int64, error)
	Delete(id int) (int64, error)
	CheckEmailExists(email string, id int) (bool, error)
}

type userRepository struct {
	users *table[entities.User]
}

func NewUserRepository(store storage.Store) (UserRepository, error) {
	t, err := newTable(store, "api_users", entities.SampleUsers(),
		func(u entities.User) int { return u.ID },
		func(u entities.User, id int) entities.User { u.ID = id; return u })
	if err != nil {
		return nil, err
	}
	return &userRepository{users: t}, nil
}

func (r *userRepository) GetAll() ([]entities.User, error) {
	return r.users.all(), nil
}

func (r *userRepository) GetByID(id int) (entities.User, error) {
	return r.users.get(id)
}

func (r *userRepository) Create(user entities.User) (entities.User, error) {
	return r.users.insert(user, nil)
}

func (r *userRepository) Update(id int, user entities.User) (int64, error) {
	return r.users.update(id, user, nil)
}

func (r *userRepository) Delete(id int) (int64, error) {
	return r.users.delete(id)
}

// CheckEmailExists reports whether another user than id already uses email.
func (r *userRepository) CheckEmailExists(email string, id int) (bool, error) {
	for _, u := range r.users.all() {
		if u.ID != id && u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
