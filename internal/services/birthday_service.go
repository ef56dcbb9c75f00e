package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wagner840/restaurant-backoffice/internal/models"
	"github.com/wagner840/restaurant-backoffice/internal/redis"
	"github.com/wagner840/restaurant-backoffice/internal/repository"
)

// BirthdayNotice identifies which campaign message goes out.
type BirthdayNotice string

const (
	Notice30d BirthdayNotice = "30d"
	Notice15d BirthdayNotice = "15d"
)

var (
	ErrNoticeAlreadySent = errors.New("birthday notice already sent this cycle")
	ErrCustomerNoPhone   = errors.New("customer has no whatsapp number")
	ErrUnknownNotice     = errors.New("unknown birthday notice")
)

// Upcoming window shown on the birthdays screen.
const upcomingBirthdayWindow = 30 * 24 * time.Hour

type BirthdayService interface {
	GetUpcomingBirthdays() ([]models.Customer, error)
	UpdateStatus(customerID uuid.UUID, status models.BirthdayStatus) (*models.Customer, error)
	SendBirthdayNotice(customerID uuid.UUID, notice BirthdayNotice) (*models.Customer, error)
}

// MessageSender is the outbound notification capability; pkg/whatsapp
// implements it.
type MessageSender interface {
	SendTextMessage(phone, message string) error
}

type birthdayService struct {
	customerRepo repository.CustomerRepository
	sender       MessageSender
	cache        *redis.Client
	now          func() time.Time
}

func NewBirthdayService(customerRepo repository.CustomerRepository, sender MessageSender, cache *redis.Client) BirthdayService {
	return &birthdayService{
		customerRepo: customerRepo,
		sender:       sender,
		cache:        cache,
		now:          time.Now,
	}
}

// GetUpcomingBirthdays returns customers whose birthday falls within the next
// 30 days, soonest first.
func (s *birthdayService) GetUpcomingBirthdays() ([]models.Customer, error) {
	customers, err := s.customerRepo.GetWithBirthday()
	if err != nil {
		return nil, err
	}

	today := truncateToDay(s.now())
	upcoming := make([]models.Customer, 0, len(customers))
	for _, customer := range customers {
		if customer.Birthday == nil {
			continue
		}
		next := nextOccurrence(*customer.Birthday, today)
		if next.Sub(today) <= upcomingBirthdayWindow {
			upcoming = append(upcoming, customer)
		}
	}

	sortByNextBirthday(upcoming, today)
	return upcoming, nil
}

func (s *birthdayService) UpdateStatus(customerID uuid.UUID, status models.BirthdayStatus) (*models.Customer, error) {
	if _, err := models.ParseBirthdayStatus(string(status)); err != nil {
		return nil, err
	}
	return s.customerRepo.UpdateBirthdayStatus(customerID, status)
}

// SendBirthdayNotice delivers the 30-day or 15-day campaign message and moves
// the customer to the matching funnel stage. Redis keeps a per-cycle flag so
// repeated clicks cannot double-send.
func (s *birthdayService) SendBirthdayNotice(customerID uuid.UUID, notice BirthdayNotice) (*models.Customer, error) {
	var status models.BirthdayStatus
	switch notice {
	case Notice30d:
		status = models.Birthday30dSent
	case Notice15d:
		status = models.Birthday15dSent
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotice, notice)
	}

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	if customer.WhatsApp == "" {
		return nil, ErrCustomerNoPhone
	}

	if s.cache != nil {
		sent, err := s.cache.WasNoticeSent(customerID.String(), string(notice))
		if err != nil {
			logrus.WithError(err).Warn("birthday notice dedupe check failed, sending anyway")
		} else if sent {
			return nil, ErrNoticeAlreadySent
		}
	}

	if err := s.sender.SendTextMessage(customer.WhatsApp, noticeMessage(customer, notice)); err != nil {
		return nil, fmt.Errorf("failed to send birthday notice: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.MarkNoticeSent(customerID.String(), string(notice), 365*24*time.Hour); err != nil {
			logrus.WithError(err).Warn("failed to mark birthday notice as sent")
		}
	}

	logrus.WithFields(logrus.Fields{
		"customer_id": customerID,
		"notice":      notice,
	}).Info("birthday notice sent")

	return s.customerRepo.UpdateBirthdayStatus(customerID, status)
}

func noticeMessage(customer *models.Customer, notice BirthdayNotice) string {
	switch notice {
	case Notice30d:
		return fmt.Sprintf(
			"Olá %s! Seu aniversário está chegando 🎉 Reserve sua comemoração conosco e ganhe um mimo especial. Código: %s",
			customer.Name, customer.UniqueCode)
	default:
		return fmt.Sprintf(
			"Olá %s! Faltam poucos dias para o seu aniversário 🎂 Ainda dá tempo de agendar sua comemoração. Código: %s",
			customer.Name, customer.UniqueCode)
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// nextOccurrence projects a birthday onto its next calendar occurrence on or
// after today.
func nextOccurrence(birthday, today time.Time) time.Time {
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, today.Location())
	if next.Before(today) {
		next = next.AddDate(1, 0, 0)
	}
	return next
}

func sortByNextBirthday(customers []models.Customer, today time.Time) {
	sort.Slice(customers, func(i, j int) bool {
		return nextOccurrence(*customers[i].Birthday, today).
			Before(nextOccurrence(*customers[j].Birthday, today))
	})
}
