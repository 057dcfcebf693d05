// services/escalation_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"supportdesk-backend/models"
	"supportdesk-backend/utils"
)

// EscalationGateway is the slice of the attendance gateway the scheduler
// needs. remote.Attendances satisfies it.
type EscalationGateway interface {
	ListOverdue(ctx context.Context, now time.Time) ([]models.Attendance, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (models.Attendance, error)
}

// EscalationService bumps the priority of past-due attendances one step
// toward urgent and pings the assigned attendant by SMS when Twilio is
// configured.
type EscalationService struct {
	gateway EscalationGateway
	client  *twilio.RestClient
	from    string
}

func NewEscalationService(gateway EscalationGateway) *EscalationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	s := &EscalationService{
		gateway: gateway,
		from:    os.Getenv("TWILIO_FROM_NUMBER"),
	}
	if accountSid != "" && authToken != "" {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}
	return s
}

func (s *EscalationService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", func() {
		s.EscalateOverdue(context.Background())
	})

	c.Start()
	log.Println("Escalation scheduler started")
}

// EscalateOverdue processes every attendance whose due date fell before the
// start of today and that is not completed.
func (s *EscalationService) EscalateOverdue(ctx context.Context) {
	log.Println("Starting overdue escalation...")

	cutoff := utils.BeginningOfDay(time.Now())
	overdue, err := s.gateway.ListOverdue(ctx, cutoff)
	if err != nil {
		log.Printf("Failed to fetch overdue attendances: %v", err)
		return
	}

	for _, attendance := range overdue {
		next := models.NextPriority(attendance.Priority)
		if next == attendance.Priority {
			continue
		}
		updated, err := s.gateway.Update(ctx, attendance.ID, map[string]interface{}{"priority": next})
		if err != nil {
			log.Printf("Attendance %s: failed to escalate priority: %v", attendance.ID, err)
			continue
		}
		log.Printf("Attendance %s escalated %s -> %s", attendance.ID, attendance.Priority, updated.Priority)
		s.notifyAttendant(attendance, next)
	}

	log.Println("Overdue escalation completed")
}

func (s *EscalationService) notifyAttendant(attendance models.Attendance, priority string) {
	if s.client == nil || s.from == "" {
		return
	}
	if attendance.Attendant == nil || attendance.Attendant.Phone == "" {
		return
	}
	if attendance.DueDate == nil {
		return
	}

	days := utils.DaysBetween(*attendance.DueDate, time.Now())
	body := fmt.Sprintf("[SupportDesk] \"%s\" is %d day(s) overdue and was raised to %s priority.",
		attendance.Title, days, priority)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(attendance.Attendant.Phone)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Attendance %s: failed to notify %s: %v", attendance.ID, attendance.Attendant.Name, err)
	}
}
