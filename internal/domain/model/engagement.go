package model

import "time"

// AppointmentStatus describes booking lifecycle, mutated only by PATCH.
type AppointmentStatus string

const (
	AppointmentStatusRequested AppointmentStatus = "Requested"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// ValidAppointmentStatus reports whether s is a member of the status enum.
func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusRequested, AppointmentStatusConfirmed, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Appointment is a service booking made by a user.
type Appointment struct {
	ID          string
	UserID      string
	ServiceID   string
	ScheduledAt time.Time
	Note        string
	Status      AppointmentStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CommentStatus is the moderation state of a product comment.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "Pending"
	CommentStatusApproved CommentStatus = "Approved"
	CommentStatusRejected CommentStatus = "Rejected"
)

// ValidCommentStatus reports whether s is a member of the status enum.
func ValidCommentStatus(s CommentStatus) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return true
	}
	return false
}

// Comment is a user review on a product, visible once approved.
type Comment struct {
	ID        string
	UserID    string
	ProductID string
	Body      string
	Rating    int
	Status    CommentStatus
	CreatedAt time.Time
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}
