package dto

import "NUTRINO_BACK-END/internal/models"

// HealthStatusRequest is the body of POST /api/v1/healthstatus. Every key is
// optional except userId; numeric values may be JSON numbers or numeric strings.
type HealthStatusRequest struct {
	UserID            Field `json:"userId"`
	Age               Field `json:"age"`
	Gender            Field `json:"gender"`
	Height            Field `json:"height"`
	Weight            Field `json:"weight"`
	ActivityLevel     Field `json:"activityLevel"`
	MedicalConditions Field `json:"medicalConditions"`
	Allergies         Field `json:"allergies"`
	DigestiveIssues   Field `json:"digestiveIssues"`
	PregnancyStatus   Field `json:"pregnancyStatus"`
	Breastfeeding     Field `json:"breastfeeding"`
	RecentSurgery     Field `json:"recentSurgery"`
	ChronicPain       Field `json:"chronicPain"`
}

// HealthStatusPayload documents the request shape for swagger.
type HealthStatusPayload struct {
	UserID            int      `json:"userId" example:"7"`
	Age               string   `json:"age,omitempty" example:"30"`
	Gender            string   `json:"gender,omitempty" example:"female"`
	Height            string   `json:"height,omitempty" example:"180"`
	Weight            string   `json:"weight,omitempty" example:"75.5"`
	ActivityLevel     string   `json:"activityLevel,omitempty" example:"moderate"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
	Allergies         []string `json:"allergies,omitempty"`
	DigestiveIssues   []string `json:"digestiveIssues,omitempty"`
	PregnancyStatus   *bool    `json:"pregnancyStatus,omitempty"`
	Breastfeeding     *bool    `json:"breastfeeding,omitempty"`
	RecentSurgery     *bool    `json:"recentSurgery,omitempty"`
	ChronicPain       *bool    `json:"chronicPain,omitempty"`
}

// HealthStatusResponse wraps a stored profile.
type HealthStatusResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message,omitempty"`
	Data    *models.HealthProfile `json:"data"`
}

// UserDetailsResponse wraps a user with its health profile.
type UserDetailsResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *models.User `json:"data"`
}
