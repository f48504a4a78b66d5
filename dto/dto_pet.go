package dto

import "yaopets-backend/model"

type CreatePetReq struct {
	Name        string          `json:"name"`
	Species     string          `json:"species"`
	Breed       string          `json:"breed"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	City        string          `json:"city"`
	Location    *model.GeoPoint `json:"location,omitempty"`
	PhotoURLs   []string        `json:"photoUrls"`
	Contact     string          `json:"contact"`
}

type UpdatePetStatusReq struct {
	Status string `json:"status"`
}

type ListPetsResp struct {
	Pets       []model.Pet `json:"pets"`
	Pagination Pagination  `json:"pagination"`
}
