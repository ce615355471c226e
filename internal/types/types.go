package types

import (
	"time"
)

type User struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Room struct {
	Id         string    `json:"id"`
	Name       string    `json:"name"`
	FloorLabel string    `json:"floorLabel"`
	Type       string    `json:"type,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

type UserAppliance struct {
	Id                 string    `json:"id"`
	ApplianceName      string    `json:"applianceName"`
	CustomName         string    `json:"customName,omitempty"`
	UsageType          string    `json:"usageType"`
	HoursPerDay        float64   `json:"hoursPerDay,omitempty"`
	UsesPerDay         float64   `json:"usesPerDay,omitempty"`
	RoomId             string    `json:"roomId,omitempty"`
	RoomName           string    `json:"roomName,omitempty"`
	DailyKWh           float64   `json:"dailyKWh"`
	EstimatedDailyCost float64   `json:"estimatedDailyCost"`
	CreatedAt          time.Time `json:"createdAt,omitempty"`
	UpdatedAt          time.Time `json:"updatedAt,omitempty"`
}
