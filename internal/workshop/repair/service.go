// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repair

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/pointer"
	"github.com/taibuivan/microcctv/pkg/uuid"
)

// Service implements repair ticket management.
type Service struct {
	repairs Repository
	logger  *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repairs Repository, logger *slog.Logger) *Service {
	return &Service{repairs: repairs, logger: logger}
}

func validateRepair(repair *Repair) error {
	validator := &validate.Validator{}
	validator.Required(FieldDeviceName, repair.DeviceName).
		Required(FieldSerialNo, repair.SerialNo).
		Required(FieldProgress, repair.Progress).
		Required(FieldEstimatedDate, repair.EstimatedDate)
	if repair.EstimatedDate != "" {
		validator.Date(FieldEstimatedDate, repair.EstimatedDate)
	}
	return validator.Err()
}

func (service *Service) List(context context.Context, limit, offset int) ([]*Repair, int, error) {
	return service.repairs.List(context, limit, offset)
}

// Get returns one ticket. Ids that are not UUIDs cannot exist and report 404.
func (service *Service) Get(context context.Context, id string) (*Repair, error) {
	if !uuid.Valid(id) {
		return nil, apperr.NotFound(repairResource)
	}
	return service.repairs.FindByID(context, id)
}

// CreateInput describes a new ticket.
type CreateInput struct {
	DeviceName    string
	SerialNo      string
	Progress      string
	Notes         string
	EstimatedDate string
}

func (service *Service) Create(context context.Context, input CreateInput) (*Repair, error) {
	repair := &Repair{
		ID:            uuid.New(),
		DeviceName:    strings.TrimSpace(input.DeviceName),
		SerialNo:      strings.TrimSpace(input.SerialNo),
		Progress:      strings.TrimSpace(input.Progress),
		Notes:         strings.TrimSpace(input.Notes),
		EstimatedDate: strings.TrimSpace(input.EstimatedDate),
	}

	if err := validateRepair(repair); err != nil {
		return nil, err
	}

	if err := service.repairs.Create(context, repair); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "repair_created", slog.String("repair_id", repair.ID))
	return repair, nil
}

// UpdateInput is a partial update. Nil fields stay unchanged.
type UpdateInput struct {
	DeviceName    *string
	SerialNo      *string
	Progress      *string
	Notes         *string
	EstimatedDate *string
}

/*
Update applies a partial update to a ticket.

Returns:
  - *Repair: The ticket after the update
  - error: NotFound, or InvalidPayload when a field is blanked or the date is malformed
*/
func (service *Service) Update(context context.Context, id string, input UpdateInput) (*Repair, error) {
	repair, err := service.Get(context, id)
	if err != nil {
		return nil, err
	}

	repair.DeviceName = strings.TrimSpace(pointer.Fallback(input.DeviceName, repair.DeviceName))
	repair.SerialNo = strings.TrimSpace(pointer.Fallback(input.SerialNo, repair.SerialNo))
	repair.Progress = strings.TrimSpace(pointer.Fallback(input.Progress, repair.Progress))
	repair.Notes = strings.TrimSpace(pointer.Fallback(input.Notes, repair.Notes))
	repair.EstimatedDate = strings.TrimSpace(pointer.Fallback(input.EstimatedDate, repair.EstimatedDate))

	if err := validateRepair(repair); err != nil {
		return nil, err
	}

	if err := service.repairs.Update(context, repair); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "repair_updated",
		slog.String("repair_id", repair.ID),
		slog.String("progress", repair.Progress),
	)
	return repair, nil
}

func (service *Service) Delete(context context.Context, id string) error {
	if !uuid.Valid(id) {
		return apperr.NotFound(repairResource)
	}

	if err := service.repairs.Delete(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "repair_deleted", slog.String("repair_id", id))
	return nil
}
