package usecases

import (
	"net/http"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/entities"
	"BE-HOTEL-ADMIN/app/listing"
	"BE-HOTEL-ADMIN/app/repositories"
)

// UserUsecase manages guest profiles. Login accounts are handled by AuthUsecase.
type UserUsecase interface {
	GetAll(q listing.Query) (listing.Page[entities.User], error)
	GetByID(id int) (entities.User, error)
	Create(req entities.UserRequest) (entities.User, error)
	Update(id int, req entities.UserRequest) (entities.User, error)
	Delete(id int) error
}

type userUsecase struct {
	userRepo repositories.UserRepository
	schema   listing.Schema[entities.User]
}

func NewUserUsecase(userRepo repositories.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo, schema: catalog.UserSchema(0)}
}

func (u *userUsecase) GetAll(q listing.Query) (listing.Page[entities.User], error) {
	users, err := u.userRepo.GetAll()
	if err != nil {
		return listing.Page[entities.User]{}, internal()
	}
	return paginate(users, u.schema, q)
}

func (u *userUsecase) GetByID(id int) (entities.User, error) {
	user, err := u.userRepo.GetByID(id)
	if err != nil {
		return user, lookupError(err, "user not found")
	}
	return user, nil
}

func (u *userUsecase) Create(req entities.UserRequest) (entities.User, error) {
	user := u.schema.Prepare(req.ToUser())
	if err := u.check(user, 0); err != nil {
		return entities.User{}, err
	}
	created, err := u.userRepo.Create(user)
	if err != nil {
		return entities.User{}, internal()
	}
	return created, nil
}

func (u *userUsecase) Update(id int, req entities.UserRequest) (entities.User, error) {
	old, err := u.GetByID(id)
	if err != nil {
		return old, err
	}
	user := u.schema.Prepare(req.MergeInto(old))
	if err := u.check(user, id); err != nil {
		return entities.User{}, err
	}
	rowsAffected, err := u.userRepo.Update(id, user)
	if err != nil {
		return entities.User{}, internal()
	}
	if rowsAffected == 0 {
		return entities.User{}, notFound("user not found")
	}
	return user, nil
}

func (u *userUsecase) check(user entities.User, id int) error {
	if errs := u.schema.Validate(user, nil); len(errs) > 0 {
		return invalid(errs)
	}
	exists, err := u.userRepo.CheckEmailExists(user.Email, id)
	if err != nil {
		return internal()
	}
	if exists {
		return &UseCaseError{Code: http.StatusConflict, Message: "email already in use"}
	}
	return nil
}

func (u *userUsecase) Delete(id int) error {
	rowsAffected, err := u.userRepo.Delete(id)
	if err != nil {
		return internal()
	}
	if rowsAffected == 0 {
		return notFound("user not found")
	}
	return nil
}
