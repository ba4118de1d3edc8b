package dto

import (
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

// ToProperty converts a CreatePropertyRequest to a vacant Property owned by ownerID.
func (r *CreatePropertyRequest) ToProperty(ownerID string) *domain.Property {
	return &domain.Property{
		OwnerID:    ownerID,
		Address:    r.Address,
		City:       r.City,
		State:      r.State,
		Country:    r.Country,
		Type:       r.Type,
		Size:       r.Size,
		RentAmount: r.RentAmount,
		ImageURL:   r.ImageURL,
	}
}

func FromAccount(account *domain.Account, role domain.Role) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Phone:     account.Phone,
		Role:      string(role),
		CreatedAt: account.CreatedAt,
	}
}
