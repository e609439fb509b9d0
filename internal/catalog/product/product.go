// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product manages the shop's product catalog.

Anyone may browse and search available products. Hidden products, and every
write operation, are reserved for administrators.
*/
package product

import (
	"encoding/json"
	"time"

	"github.com/taibuivan/microcctv/pkg/query"
)

// DefaultImage is used when a product is created without images.
const DefaultImage = "/default-product.jpg"

// Product is one catalog entry.
type Product struct {
	ProductID   string    `json:"productId"`
	Name        string    `json:"name"`
	AltNames    []string  `json:"altNames"`
	LabelPrice  float64   `json:"labelPrice"`
	Price       float64   `json:"price"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NameList decodes either a JSON array of strings or a single
// comma-separated string such as "NVR, recorder".
type NameList []string

// UnmarshalJSON implements [json.Unmarshaler].
func (list *NameList) UnmarshalJSON(data []byte) error {
	var joined string
	if err := json.Unmarshal(data, &joined); err == nil {
		*list = query.CommaList(joined)
		return nil
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	*list = names
	return nil
}

// Filter narrows a product listing.
type Filter struct {
	// Search matches the name or any alternative name, case-insensitively.
	Search string
	// AvailableOnly hides products whose isAvailable flag is false.
	AvailableOnly bool
}

// Field names used in validation errors.
const (
	FieldProductID   = "productId"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldLabelPrice  = "labelPrice"
	FieldStock       = "stock"
	FieldImages      = "images"
)
