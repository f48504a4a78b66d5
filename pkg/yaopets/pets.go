package yaopets

import (
	"context"
	"net/url"
)

func (c *Client) ListPets(ctx context.Context, status, city string) (Collection[Pet], error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if city != "" {
		q.Set("city", city)
	}
	body, err := c.get(ctx, "/pets", q)
	if err != nil {
		return Collection[Pet]{}, err
	}
	return decodeCollection[Pet](body, "pets")
}

func (c *Client) GetPet(ctx context.Context, id string) (*Pet, error) {
	body, err := c.get(ctx, "/pets/"+id, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord[Pet](body)
}

type CreatePetRequest struct {
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	Location    *GeoPoint `json:"location,omitempty"`
	PhotoURLs   []string  `json:"photoUrls,omitempty"`
	Contact     string    `json:"contact,omitempty"`
}

func (c *Client) CreatePet(ctx context.Context, req CreatePetRequest) (*Pet, error) {
	body, err := c.post(ctx, "/pets", req)
	if err != nil {
		return nil, err
	}
	return decodeRecord[Pet](body)
}

func (c *Client) UpdatePetStatus(ctx context.Context, id, status string) (*Pet, error) {
	body, err := c.patch(ctx, "/pets/"+id+"/status", map[string]string{"status": status})
	if err != nil {
		return nil, err
	}
	return decodeRecord[Pet](body)
}
