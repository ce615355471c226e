package database

import (
	"time"

	"github.com/liamo132/currently-server/internal/catalog"
)

type Account struct {
	Id           int
	Username     string
	EmailAddress string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Room struct {
	Id         int
	ExternalId string
	AccountId  int
	Name       string
	FloorLabel string
	Type       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// UserAppliance links an account to a catalogue archetype by name,
// with the owner's usage figures. RoomId is zero when the appliance is
// not assigned to a room; RoomExternalId and RoomName are populated
// from the joined room on reads.
type UserAppliance struct {
	Id             int
	ExternalId     string
	AccountId      int
	RoomId         int
	RoomExternalId string
	RoomName       string
	ApplianceName  string
	CustomName     string
	UsageKind      catalog.UsageKind
	HoursPerDay    float64
	UsesPerDay     float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateAccountParams struct {
	Username     string
	EmailAddress string
	PasswordHash string
}

type CreateRoomParams struct {
	ExternalId string
	AccountId  int
	Name       string
	FloorLabel string
	Type       string
}

type UpdateRoomParams struct {
	RoomId     int
	Name       string
	FloorLabel string
	Type       string
}

type CreateUserApplianceParams struct {
	ExternalId    string
	AccountId     int
	RoomId        int
	ApplianceName string
	CustomName    string
	UsageKind     catalog.UsageKind
	HoursPerDay   float64
	UsesPerDay    float64
}

type UpdateUserApplianceParams struct {
	UserApplianceId int
	RoomId          int
	CustomName      string
	HoursPerDay     float64
	UsesPerDay      float64
}
