package models

import "time"

// AnonymousName is stored when the identity provider sends no first or last name.
const AnonymousName = "Anonymous"

// User is an account provisioned from a Clerk user.created event.
type User struct {
	ID            int64          `json:"id" db:"id" gorm:"primaryKey"`
	ClerkID       string         `json:"clerkId" db:"clerk_id" gorm:"uniqueIndex;not null"`
	Email         string         `json:"email" db:"email" gorm:"uniqueIndex;not null"`
	Name          string         `json:"name" db:"name" gorm:"not null"`
	HealthProfile *HealthProfile `json:"healthProfile,omitempty" db:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
}

// WebhookEvent records a processed webhook delivery by its message id.
type WebhookEvent struct {
	ID          string    `json:"id" db:"id" gorm:"primaryKey"`
	Type        string    `json:"type" db:"type" gorm:"not null"`
	ProcessedAt time.Time `json:"processedAt" db:"processed_at" gorm:"autoCreateTime"`
}
