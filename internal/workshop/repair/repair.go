// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package repair tracks devices brought into the workshop.
package repair

import (
	"context"
	"time"
)

// Repair is a workshop ticket.
type Repair struct {
	ID         string `json:"id"`
	DeviceName string `json:"deviceName"`
	SerialNo   string `json:"serialNo"`
	Progress   string `json:"progress"`
	Notes      string `json:"notes"`

	// EstimatedDate is a calendar date in YYYY-MM-DD form.
	EstimatedDate string `json:"estimatedDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Repository defines the data access contract for repair tickets.
type Repository interface {
	List(context context.Context, limit, offset int) ([]*Repair, int, error)
	FindByID(context context.Context, id string) (*Repair, error)
	Create(context context.Context, repair *Repair) error
	Update(context context.Context, repair *Repair) error
	Delete(context context.Context, id string) error
}

const (
	FieldDeviceName    = "deviceName"
	FieldSerialNo      = "serialNo"
	FieldProgress      = "progress"
	FieldNotes         = "notes"
	FieldEstimatedDate = "estimatedDate"
)

const repairResource = "Repair"
