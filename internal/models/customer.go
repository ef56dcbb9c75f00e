package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BirthdayStatus tracks a customer through the birthday-marketing funnel.
type BirthdayStatus string

const (
	BirthdayEligible  BirthdayStatus = "eligible"
	Birthday30dSent   BirthdayStatus = "30d_sent"
	Birthday15dSent   BirthdayStatus = "15d_sent"
	BirthdayBooked    BirthdayStatus = "booked"
	BirthdayDeclined  BirthdayStatus = "declined"
	BirthdayCompleted BirthdayStatus = "completed"
)

var birthdayStatusLabels = map[BirthdayStatus]string{
	BirthdayEligible:  "Elegível",
	Birthday30dSent:   "Aviso 30d",
	Birthday15dSent:   "Aviso 15d",
	BirthdayBooked:    "Agendado",
	BirthdayDeclined:  "Recusado",
	BirthdayCompleted: "Concluído",
}

func ParseBirthdayStatus(s string) (BirthdayStatus, error) {
	switch BirthdayStatus(s) {
	case BirthdayEligible, Birthday30dSent, Birthday15dSent,
		BirthdayBooked, BirthdayDeclined, BirthdayCompleted:
		return BirthdayStatus(s), nil
	default:
		return "", fmt.Errorf("unknown birthday status: %q", s)
	}
}

// Label returns the display name for the funnel stage, defaulting to the
// eligible label for unset or unrecognized values.
func (s BirthdayStatus) Label() string {
	if label, ok := birthdayStatusLabels[s]; ok {
		return label
	}
	return birthdayStatusLabels[BirthdayEligible]
}

type Customer struct {
	ID              uuid.UUID      `json:"customer_id" gorm:"type:uuid;primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	WhatsApp        string         `json:"whatsapp" gorm:"column:whatsapp;index"`
	Email           string         `json:"email"`
	Birthday        *time.Time     `json:"birthday"`
	UniqueCode      string         `json:"unique_code" gorm:"unique"`
	BirthdayStatus  BirthdayStatus `json:"birthday_status" gorm:"type:varchar(16);default:'eligible'"`
	WhatsAppChatID  *int64         `json:"whatsapp_chat_id"`
	LastContactedAt *time.Time     `json:"last_contacted_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Address struct {
	ID         uuid.UUID `json:"address_id" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `json:"customer_id" gorm:"type:uuid;index"`
	Street     string    `json:"street"`
	Number     string    `json:"number"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"created_at"`
}

func (a *Address) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// CustomerDetails is the computed profile shown in the customer drawer.
type CustomerDetails struct {
	TotalOrders  int      `json:"total_orders"`
	TotalSpent   float64  `json:"total_spent"`
	FavoriteDays []string `json:"favorite_days"`
}
