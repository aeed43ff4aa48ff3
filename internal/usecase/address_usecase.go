package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// AddressUsecase は住所CRUD。常に本人の行しか見えない。
type AddressUsecase struct {
	addressRepo repo.AddressRepository
}

// DI
func NewAddressUsecase(addressRepo repo.AddressRepository) *AddressUsecase {
	return &AddressUsecase{addressRepo: addressRepo}
}

type AddressCreateInput struct {
	City       string
	State      string
	CEP        int64
	Street     string
	Number     int64
	Complement string
}

type AddressUpdateInput struct {
	City       *string
	State      *string
	CEP        *int64
	Street     *string
	Number     *int64
	Complement *string
}

func (u *AddressUsecase) List(ctx context.Context, userID int64) ([]model.Address, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	list, err := u.addressRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return list, nil
}

func (u *AddressUsecase) Get(ctx context.Context, userID int64, addressID int64) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	return u.findOwned(ctx, userID, addressID)
}

func (u *AddressUsecase) Create(ctx context.Context, userID int64, in AddressCreateInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := validateAddress(in); err != nil {
		return model.Address{}, err
	}

	a := model.Address{
		UserID:     userID,
		City:       in.City,
		State:      in.State,
		CEP:        in.CEP,
		Street:     in.Street,
		Number:     in.Number,
		Complement: in.Complement,
	}

	created, err := u.addressRepo.Create(ctx, a)
	if err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// Update replaces every field (PUT).
func (u *AddressUsecase) Update(ctx context.Context, userID int64, addressID int64, in AddressCreateInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := validateAddress(in); err != nil {
		return model.Address{}, err
	}

	a, err := u.findOwned(ctx, userID, addressID)
	if err != nil {
		return model.Address{}, err
	}

	a.City = in.City
	a.State = in.State
	a.CEP = in.CEP
	a.Street = in.Street
	a.Number = in.Number
	a.Complement = in.Complement

	if err := u.addressRepo.Update(ctx, a); err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a, nil
}

// PartialUpdate changes only the supplied fields (PATCH).
func (u *AddressUsecase) PartialUpdate(ctx context.Context, userID int64, addressID int64, in AddressUpdateInput) (model.Address, error) {
	if userID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	a, err := u.findOwned(ctx, userID, addressID)
	if err != nil {
		return model.Address{}, err
	}

	if in.City != nil {
		a.City = *in.City
	}
	if in.State != nil {
		a.State = *in.State
	}
	if in.CEP != nil {
		if *in.CEP <= 0 {
			return model.Address{}, NewHTTPError(http.StatusBadRequest, "invalid cep")
		}
		a.CEP = *in.CEP
	}
	if in.Street != nil {
		a.Street = *in.Street
	}
	if in.Number != nil {
		if *in.Number <= 0 {
			return model.Address{}, NewHTTPError(http.StatusBadRequest, "invalid number")
		}
		a.Number = *in.Number
	}
	if in.Complement != nil {
		a.Complement = *in.Complement
	}

	if err := u.addressRepo.Update(ctx, a); err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a, nil
}

func (u *AddressUsecase) Delete(ctx context.Context, userID int64, addressID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if _, err := u.findOwned(ctx, userID, addressID); err != nil {
		return err
	}

	if err := u.addressRepo.Delete(ctx, addressID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// findOwned treats other users' addresses as missing.
func (u *AddressUsecase) findOwned(ctx context.Context, userID int64, addressID int64) (model.Address, error) {
	if addressID <= 0 {
		return model.Address{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := u.addressRepo.FindByID(ctx, addressID)
	if err == repo.ErrNotFound {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Address{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if a.UserID != userID {
		return model.Address{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return a, nil
}

func validateAddress(in AddressCreateInput) error {
	if strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.State) == "" ||
		strings.TrimSpace(in.Street) == "" {
		return NewHTTPError(http.StatusBadRequest, "city, state and street are required")
	}
	if in.CEP <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid cep")
	}
	if in.Number <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid number")
	}
	return nil
}
