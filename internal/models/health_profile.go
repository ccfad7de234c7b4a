package models

import "time"

// HealthProfile holds a user's dietary and health attributes. Exactly one
// row may exist per user. Nil pointers mean "not known".
type HealthProfile struct {
	ID                int64     `json:"id" db:"id" gorm:"primaryKey"`
	UserID            int64     `json:"userId" db:"user_id" gorm:"uniqueIndex;not null"`
	Age               *int      `json:"age" db:"age"`
	Gender            *string   `json:"gender" db:"gender"`
	Height            *float64  `json:"height" db:"height"`
	Weight            *float64  `json:"weight" db:"weight"`
	ActivityLevel     *string   `json:"activityLevel" db:"activity_level"`
	MedicalConditions []string  `json:"medicalConditions" db:"medical_conditions" gorm:"type:text;serializer:json;not null"`
	Allergies         []string  `json:"allergies" db:"allergies" gorm:"type:text;serializer:json;not null"`
	DigestiveIssues   []string  `json:"digestiveIssues" db:"digestive_issues" gorm:"type:text;serializer:json;not null"`
	PregnancyStatus   *bool     `json:"pregnancyStatus" db:"pregnancy_status"`
	Breastfeeding     *bool     `json:"breastfeeding" db:"breastfeeding"`
	RecentSurgery     *bool     `json:"recentSurgery" db:"recent_surgery"`
	ChronicPain       *bool     `json:"chronicPain" db:"chronic_pain"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// NewHealthProfile returns an empty profile for userID with list fields
// initialised, matching what a first submission stores for omitted keys.
func NewHealthProfile(userID int64) *HealthProfile {
	return &HealthProfile{
		UserID:            userID,
		MedicalConditions: []string{},
		Allergies:         []string{},
		DigestiveIssues:   []string{},
	}
}

// Clone returns a deep copy of p.
func (p *HealthProfile) Clone() *HealthProfile {
	c := *p
	c.Age = clonePtr(p.Age)
	c.Gender = clonePtr(p.Gender)
	c.Height = clonePtr(p.Height)
	c.Weight = clonePtr(p.Weight)
	c.ActivityLevel = clonePtr(p.ActivityLevel)
	c.MedicalConditions = append([]string{}, p.MedicalConditions...)
	c.Allergies = append([]string{}, p.Allergies...)
	c.DigestiveIssues = append([]string{}, p.DigestiveIssues...)
	c.PregnancyStatus = clonePtr(p.PregnancyStatus)
	c.Breastfeeding = clonePtr(p.Breastfeeding)
	c.RecentSurgery = clonePtr(p.RecentSurgery)
	c.ChronicPain = clonePtr(p.ChronicPain)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
