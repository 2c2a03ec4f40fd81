package types

import "time"

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TodoResponse struct {
	ID            uint       `json:"id"`
	Text          string     `json:"text"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate"`
	DueDate       *string    `json:"dueDate"`
	Tag           string     `json:"tag"`
	Priority      string     `json:"priority"`
	Recurrence    string     `json:"recurrence"`
	Reminder      bool       `json:"reminder"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
