package response

import (
	"gin-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AddressResponse struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
}

type ProfileResponse struct {
	Name           string          `json:"name"`
	Nickname       string          `json:"nickname"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Location       string          `json:"location"`
	Preferences    string          `json:"preferences"`
	FavoriteStyles string          `json:"favoriteStyles"`
	Address        AddressResponse `json:"address"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromProfileView(v *queries.ProfileView) (ProfileResponse, error) {
	var res ProfileResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		return ProfileResponse{}, err
	}
	return res, nil
}
