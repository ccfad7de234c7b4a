package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"NUTRINO_BACK-END/internal/apperr"
	"NUTRINO_BACK-END/internal/dto"
	"NUTRINO_BACK-END/internal/models"
)

// Upper bounds for numeric attributes. Height is in centimetres and weight
// in kilograms; both share one generous ceiling.
const (
	maxAge     = 150
	maxMeasure = 1000
)

// profilePatch holds the validated subset of attributes a request supplies.
// A nil pointer means "leave the stored value alone".
type profilePatch struct {
	age           *int
	gender        *string
	height        *float64
	weight        *float64
	activityLevel *string

	medicalConditions *[]string
	allergies         *[]string
	digestiveIssues   *[]string

	// flags are applied on key presence; the inner pointer may be nil to
	// reset a flag to unknown.
	pregnancyStatus *flagValue
	breastfeeding   *flagValue
	recentSurgery   *flagValue
	chronicPain     *flagValue
}

type flagValue struct {
	value *bool
}

func parsePatch(req *dto.HealthStatusRequest) (*profilePatch, error) {
	var (
		p   profilePatch
		err error
	)

	if p.age, err = parseAge(req.Age); err != nil {
		return nil, err
	}
	if p.height, err = parseMeasure("height", req.Height); err != nil {
		return nil, err
	}
	if p.weight, err = parseMeasure("weight", req.Weight); err != nil {
		return nil, err
	}
	if p.gender, err = parseText("gender", req.Gender); err != nil {
		return nil, err
	}
	if p.activityLevel, err = parseText("activityLevel", req.ActivityLevel); err != nil {
		return nil, err
	}
	if p.medicalConditions, err = parseList("medicalConditions", req.MedicalConditions); err != nil {
		return nil, err
	}
	if p.allergies, err = parseList("allergies", req.Allergies); err != nil {
		return nil, err
	}
	if p.digestiveIssues, err = parseList("digestiveIssues", req.DigestiveIssues); err != nil {
		return nil, err
	}
	if p.pregnancyStatus, err = parseFlag("pregnancyStatus", req.PregnancyStatus); err != nil {
		return nil, err
	}
	if p.breastfeeding, err = parseFlag("breastfeeding", req.Breastfeeding); err != nil {
		return nil, err
	}
	if p.recentSurgery, err = parseFlag("recentSurgery", req.RecentSurgery); err != nil {
		return nil, err
	}
	if p.chronicPain, err = parseFlag("chronicPain", req.ChronicPain); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *profilePatch) apply(hp *models.HealthProfile) {
	if p.age != nil {
		hp.Age = p.age
	}
	if p.gender != nil {
		hp.Gender = p.gender
	}
	if p.height != nil {
		hp.Height = p.height
	}
	if p.weight != nil {
		hp.Weight = p.weight
	}
	if p.activityLevel != nil {
		hp.ActivityLevel = p.activityLevel
	}
	if p.medicalConditions != nil {
		hp.MedicalConditions = *p.medicalConditions
	}
	if p.allergies != nil {
		hp.Allergies = *p.allergies
	}
	if p.digestiveIssues != nil {
		hp.DigestiveIssues = *p.digestiveIssues
	}
	if p.pregnancyStatus != nil {
		hp.PregnancyStatus = p.pregnancyStatus.value
	}
	if p.breastfeeding != nil {
		hp.Breastfeeding = p.breastfeeding.value
	}
	if p.recentSurgery != nil {
		hp.RecentSurgery = p.recentSurgery.value
	}
	if p.chronicPain != nil {
		hp.ChronicPain = p.chronicPain.value
	}
}

// ParseUserIDField validates the userId key of a request body.
func ParseUserIDField(f dto.Field) (int64, error) {
	text, ok, err := numericText("userId", f)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperr.InvalidInput("userId is required")
	}
	return ParseUserID(text)
}

// ParseUserID parses a positive integer user identifier.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidInput("userId must be a positive integer")
	}
	return id, nil
}

// numericText extracts the textual form of a number sent either as a JSON
// number or as a string. ok is false for null and empty strings.
func numericText(name string, f dto.Field) (text string, ok bool, err error) {
	if !f.Supplied() {
		return "", false, nil
	}
	raw := bytes.TrimSpace(f.Raw)
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false, apperr.InvalidInput(name + " must be a number")
		}
		s = strings.TrimSpace(s)
		return s, s != "", nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), true, nil
	default:
		return "", false, apperr.InvalidInput(name + " must be a number")
	}
}

func parseAge(f dto.Field) (*int, error) {
	text, ok, err := numericText("age", f)
	if err != nil || !ok {
		return nil, err
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return nil, apperr.InvalidInput(fmt.Sprintf("age must be between 0 and %d", maxAge))
		}
		return nil, apperr.InvalidInput("age must be a whole number, got " + strconv.Quote(text))
	}
	if v < 0 {
		return nil, apperr.InvalidInput("age must not be negative")
	}
	if v > maxAge {
		return nil, apperr.InvalidInput(fmt.Sprintf("age must be between 0 and %d", maxAge))
	}
	age := int(v)
	return &age, nil
}

func parseMeasure(name string, f dto.Field) (*float64, error) {
	text, ok, err := numericText(name, f)
	if err != nil || !ok {
		return nil, err
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperr.InvalidInput(name + " must be a number, got " + strconv.Quote(text))
	}
	if v < 0 {
		return nil, apperr.InvalidInput(name + " must not be negative")
	}
	if v > maxMeasure {
		return nil, apperr.InvalidInput(fmt.Sprintf("%s must not exceed %d", name, maxMeasure))
	}
	return &v, nil
}

func parseText(name string, f dto.Field) (*string, error) {
	if !f.Supplied() {
		return nil, nil
	}
	var s string
	if err := json.Unmarshal(f.Raw, &s); err != nil {
		return nil, apperr.InvalidInput(name + " must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	return &s, nil
}

func parseList(name string, f dto.Field) (*[]string, error) {
	if !f.Supplied() {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal(f.Raw, &items); err != nil {
		return nil, apperr.InvalidInput(name + " must be a list of strings")
	}
	if items == nil {
		items = []string{}
	}
	return &items, nil
}

func parseFlag(name string, f dto.Field) (*flagValue, error) {
	if !f.Present {
		return nil, nil
	}
	if f.IsNull() {
		return &flagValue{}, nil
	}
	var b bool
	if err := json.Unmarshal(f.Raw, &b); err != nil {
		return nil, apperr.InvalidInput(name + " must be true, false or null")
	}
	return &flagValue{value: &b}, nil
}
