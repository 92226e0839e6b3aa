package dummyjson

import "encoding/json"

type productsResponse struct {
	Products []productRecord `json:"products"`
}

type productRecord struct {
	ID                 *int64         `json:"id"`
	Title              *string        `json:"title"`
	Price              *float64       `json:"price"`
	Thumbnail          string         `json:"thumbnail"`
	Images             []string       `json:"images"`
	Category           string         `json:"category"`
	Description        string         `json:"description"`
	Rating             *float64       `json:"rating"`
	Reviews            []reviewRecord `json:"reviews"`
	Stock              *int           `json:"stock"`
	Brand              string         `json:"brand"`
	DiscountPercentage *float64       `json:"discountPercentage"`
}

type reviewRecord struct {
	Rating int `json:"rating"`
}

// categoryRecord accepts both wire shapes: current deployments return
// {slug,name,url} objects, older ones bare strings.
type categoryRecord struct {
	Slug string
}

func (c *categoryRecord) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &c.Slug)
	}
	var obj struct {
		Slug string `json:"slug"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	c.Slug = obj.Slug
	return nil
}
