package utils

import (
	"strings"

	"workorder/models"

	"github.com/pkg/errors"
)

func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.Wrap(models.ErrValidation, "rating must be between 1 and 5")
	}
	return nil
}

func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return errors.Wrap(models.ErrValidation, "quantity must be greater than zero")
	}
	return nil
}

func ValidateRepairReport(report string) error {
	if strings.TrimSpace(report) == "" {
		return errors.Wrap(models.ErrValidation, "repair report is required")
	}
	return nil
}

func WorkOrderValidityCheck(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return errors.Wrap(models.ErrValidation, "title is required")
	}
	if strings.TrimSpace(description) == "" {
		return errors.Wrap(models.ErrValidation, "description is required")
	}
	return nil
}
