package models

import "github.com/nvpwelfare/portal/internal/timex"

// Campaign is a fundraising drive. Amounts are in rupees.
type Campaign struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	GoalAmount    float64         `json:"goal_amount"`
	CurrentAmount float64         `json:"current_amount"`
	StartDate     timex.Timestamp `json:"start_date"`
	EndDate       timex.Timestamp `json:"end_date"`
	ImageURL      string          `json:"image_url,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     timex.Timestamp `json:"created_at"`
}

// Progress is the share of the goal raised so far, in percent, capped at 100.
func (c Campaign) Progress() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	p := c.CurrentAmount / c.GoalAmount * 100
	if p > 100 {
		return 100
	}
	return p
}

type Event struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	EventDate       timex.Timestamp `json:"event_date"`
	Location        string          `json:"location"`
	RegistrationFee float64         `json:"registration_fee"`
	IsPaid          bool            `json:"is_paid"`
	MaxParticipants *int            `json:"max_participants,omitempty"`
	RegisteredCount int             `json:"registered_count"`
	ImageURL        string          `json:"image_url,omitempty"`
	CreatedAt       timex.Timestamp `json:"created_at"`
}

// SeatsLeft reports the remaining capacity. ok is false for events without
// a participant limit.
func (e Event) SeatsLeft() (left int, ok bool) {
	if e.MaxParticipants == nil {
		return 0, false
	}
	left = *e.MaxParticipants - e.RegisteredCount
	if left < 0 {
		left = 0
	}
	return left, true
}

type News struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	ImageURL  string          `json:"image_url,omitempty"`
	AuthorID  string          `json:"author_id"`
	Published bool            `json:"published"`
	CreatedAt timex.Timestamp `json:"created_at"`
}

type Activity struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Images      []string        `json:"images,omitempty"`
	AuthorID    string          `json:"author_id"`
	CreatedAt   timex.Timestamp `json:"created_at"`
}

// Enquiry is a message sent from the contact page.
type Enquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
