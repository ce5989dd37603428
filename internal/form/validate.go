package form

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DateErrorMessage   = "La date ne peut pas être supérieure ou égale à demain."
	GlobalErrorMessage = "Veuillez corriger les erreurs avant de soumettre le formulaire."
)

var ErrInvalidValue = errors.New("invalid value")

var validate = validator.New(validator.WithRequiredStructEnabled())

// shapes accepted from the presentation layer, empty means cleared
type dayValue struct {
	Value string `validate:"omitempty,datetime=2006-01-02"`
}

type timeValue struct {
	Value string `validate:"omitempty,datetime=15:04"`
}

// ValidateDate rejects any day on or after tomorrow, tomorrow being local
// midnight of now plus one day. An empty or unparseable day passes.
func ValidateDate(day string, now time.Time) (bool, string) {
	d, err := time.ParseInLocation(DayLayout, day, now.Location())
	if err != nil {
		return true, ""
	}

	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	if !d.Before(tomorrow) {
		return false, DateErrorMessage
	}

	return true, ""
}

// ValidateTimeOrder requires endTime to be strictly after startTime when both
// are set. rowIndex is zero based, the message numbers lines from 1.
func ValidateTimeOrder(startTime, endTime string, rowIndex int) (bool, string) {
	if startTime != "" && endTime != "" && endTime <= startTime {
		return false, TimeOrderMessage(rowIndex)
	}

	return true, ""
}

func TimeOrderMessage(rowIndex int) string {
	return fmt.Sprintf("L'heure de sortie doit être supérieure à l'heure d'entrée pour la ligne %d.", rowIndex+1)
}

func checkShape(edit FieldEdit) error {
	var v any
	switch e := edit.(type) {
	case Day:
		v = dayValue{Value: string(e)}
	case StartTime:
		v = timeValue{Value: string(e)}
	case EndTime:
		v = timeValue{Value: string(e)}
	default:
		return fmt.Errorf("%w: unsupported field %T", ErrInvalidValue, edit)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidValue, edit.Field(), edit.Value())
	}
	return nil
}
