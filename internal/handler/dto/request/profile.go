package request

import (
	"gin-storefront/internal/domain/user"
	"gin-storefront/internal/usecase/commands"
)

type AddressRequest struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

type UpdateProfileRequest struct {
	Name           string          `json:"name"`
	Nickname       string          `json:"nickname"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	Preferences    string          `json:"preferences"`
	FavoriteStyles string          `json:"favoriteStyles"`
	Address        *AddressRequest `json:"address,omitempty"`
}

func (r *UpdateProfileRequest) ToCommand() commands.UpdateProfileRequest {
	cmd := commands.UpdateProfileRequest{
		Profile: user.Profile{
			Name:           r.Name,
			Nickname:       r.Nickname,
			Phone:          r.Phone,
			Location:       r.Location,
			Preferences:    r.Preferences,
			FavoriteStyles: r.FavoriteStyles,
		},
	}
	if r.Address != nil {
		cmd.Address = &user.Address{
			AddressLine1: r.Address.AddressLine1,
			AddressLine2: r.Address.AddressLine2,
			City:         r.Address.City,
			State:        r.Address.State,
			ZipCode:      r.Address.ZipCode,
			Country:      r.Address.Country,
		}
	}
	return cmd
}
