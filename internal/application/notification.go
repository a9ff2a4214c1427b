package application

import (
	"errors"
	"sync"

	"github.com/carebridge/careworker-go/internal/domain/notification"
	"github.com/carebridge/careworker-go/internal/repository"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationService persists notifications and fans them out to live
// websocket subscribers.
type NotificationService struct {
	Repos *repository.Repos

	mu   sync.RWMutex
	subs map[uint]map[chan notification.Notification]struct{}
}

func NewNotificationService(repos *repository.Repos) *NotificationService {
	return &NotificationService{
		Repos: repos,
		subs:  make(map[uint]map[chan notification.Notification]struct{}),
	}
}

func (s *NotificationService) List(userID uint, unreadOnly bool, limit int) ([]notification.Notification, error) {
	return s.Repos.Notification.ListByUser(userID, unreadOnly, limit)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.Repos.Notification.CountUnread(userID)
}

func (s *NotificationService) MarkRead(userID, id uint) error {
	err := s.Repos.Notification.MarkRead(userID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotificationNotFound
	}
	return err
}

func (s *NotificationService) MarkAllRead(userID uint) error {
	return s.Repos.Notification.MarkAllRead(userID)
}

// Subscribe registers a live feed for the user. The returned cancel func
// must be called when the connection closes.
func (s *NotificationService) Subscribe(userID uint) (<-chan notification.Notification, func()) {
	ch := make(chan notification.Notification, 16)

	s.mu.Lock()
	if s.subs[userID] == nil {
		s.subs[userID] = make(map[chan notification.Notification]struct{})
	}
	s.subs[userID][ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if set, ok := s.subs[userID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(s.subs, userID)
			}
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans a stored notification out to the user's live subscribers.
// Slow subscribers are skipped rather than blocked on.
func (s *NotificationService) Publish(ns ...notification.Notification) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, n := range ns {
		for ch := range s.subs[n.UserID] {
			select {
			case ch <- n:
			default:
			}
		}
	}
}
