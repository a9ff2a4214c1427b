package application

import (
	"testing"

	"github.com/carebridge/careworker-go/internal/domain/notification"
	"github.com/carebridge/careworker-go/internal/repository"
	"github.com/carebridge/careworker-go/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupNotificationServiceMocks(t *testing.T) (*NotificationService, *mock.MockNotificationRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockNotification := mock.NewMockNotificationRepo(ctrl)
	repos := &repository.Repos{
		Notification: mockNotification,
	}
	svc := NewNotificationService(repos)
	return svc, mockNotification
}

// --------------------- MarkRead ---------------------
func TestMarkRead_NotFound(t *testing.T) {
	svc, mockNotification := setupNotificationServiceMocks(t)

	mockNotification.EXPECT().MarkRead(uint(1), uint(99)).Return(gorm.ErrRecordNotFound)

	assert.Equal(t, ErrNotificationNotFound, svc.MarkRead(1, 99))
}

// --------------------- Subscribe / Publish ---------------------
func TestPublish_ReachesOnlyTargetUser(t *testing.T) {
	svc, _ := setupNotificationServiceMocks(t)

	chA, cancelA := svc.Subscribe(1)
	defer cancelA()
	chB, cancelB := svc.Subscribe(2)
	defer cancelB()

	svc.Publish(notification.Notification{UserID: 1, Type: notification.TypeFormAssigned, Message: "hi"})

	select {
	case n := <-chA:
		assert.Equal(t, notification.TypeFormAssigned, n.Type)
	default:
		t.Fatal("subscriber for user 1 received nothing")
	}
	select {
	case <-chB:
		t.Fatal("subscriber for user 2 should receive nothing")
	default:
	}
}

func TestPublish_AfterCancelDeliversNothing(t *testing.T) {
	svc, _ := setupNotificationServiceMocks(t)

	ch, cancel := svc.Subscribe(1)
	cancel()

	svc.Publish(notification.Notification{UserID: 1, Message: "late"})

	select {
	case <-ch:
		t.Fatal("cancelled subscriber should receive nothing")
	default:
	}
}

func TestPublish_SkipsFullSubscriber(t *testing.T) {
	svc, _ := setupNotificationServiceMocks(t)

	ch, cancel := svc.Subscribe(1)
	defer cancel()

	// fill the buffer, then publish once more; the overflow is dropped
	for i := 0; i < 20; i++ {
		svc.Publish(notification.Notification{UserID: 1, Message: "n"})
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	assert.Equal(t, 16, received)
}
