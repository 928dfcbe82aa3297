package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/HazemSoftPro/HotelTransylvania-sub001/models"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/storage"
	"github.com/HazemSoftPro/HotelTransylvania-sub001/utils"
)

// NotificationService writes in-app notification rows and pushes them to the
// user's registered devices on a best-effort basis.
type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotificationData is the push payload used for client-side deep linking.
type NotificationData struct {
	Type          string `json:"type"`
	ID            string `json:"id"`
	ReservationID string `json:"reservationId,omitempty"`
	Screen        string `json:"screen"`
}

func (ns *NotificationService) getUserPushTokens(userID uint) ([]string, error) {
	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %v", err)
	}

	if user.AllowsNotifications == nil || !*user.AllowsNotifications || user.PushTokens == nil {
		return nil, fmt.Errorf("user has notifications disabled or no tokens")
	}

	var tokens []string
	if err := json.Unmarshal(user.PushTokens, &tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal push tokens: %v", err)
	}
	return tokens, nil
}

// SendNotificationToUser stores an in-app notification and pushes it to every
// registered device. Push failures are logged, not surfaced.
func (ns *NotificationService) SendNotificationToUser(userID uint, title, body string, data NotificationData, refID uint, refType string) {
	notification := models.Notification{
		UserID:  userID,
		Title:   title,
		Message: body,
		Type:    data.Type,
		RefID:   refID,
		RefType: refType,
	}
	if err := storage.DB.Create(&notification).Error; err != nil {
		log.Printf("failed to store notification for user %d: %v", userID, err)
	}

	tokens, err := ns.getUserPushTokens(userID)
	if err != nil {
		return
	}

	dataMap := map[string]string{
		"type":          data.Type,
		"id":            data.ID,
		"reservationId": data.ReservationID,
		"screen":        data.Screen,
	}
	for _, token := range tokens {
		if err := utils.SendNotification(token, title, body, dataMap); err != nil {
			log.Printf("failed to send push to token %s: %v", token, err)
		}
	}
}

// SendReservationStatusNotification tells the guest's linked user account that
// their reservation moved to a new status.
func (ns *NotificationService) SendReservationStatusNotification(reservation *models.Reservation, userID uint) {
	title := "Reservation Update"
	body := fmt.Sprintf("Your reservation #%d is now %s", reservation.ID, reservation.Status)

	data := NotificationData{
		Type:          "reservation_status",
		ID:            fmt.Sprintf("%d", reservation.ID),
		ReservationID: fmt.Sprintf("%d", reservation.ID),
		Screen:        "ReservationDetail",
	}
	ns.SendNotificationToUser(userID, title, body, data, reservation.ID, "reservation")
}

// SendPaymentRecordedNotification confirms a captured payment to the guest.
func (ns *NotificationService) SendPaymentRecordedNotification(payment *models.Payment, userID uint) {
	title := "Payment Received"
	body := fmt.Sprintf("We recorded a payment of %.2f for reservation #%d", payment.Amount, payment.ReservationID)

	data := NotificationData{
		Type:          "payment_recorded",
		ID:            fmt.Sprintf("%d", payment.ID),
		ReservationID: fmt.Sprintf("%d", payment.ReservationID),
		Screen:        "ReservationDetail",
	}
	ns.SendNotificationToUser(userID, title, body, data, payment.ID, "payment")
}
