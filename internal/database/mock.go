package database

import (
	"github.com/stretchr/testify/mock"
)

type MockCurrentlyRepository struct {
	mock.Mock
}

func (m *MockCurrentlyRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockCurrentlyRepository) CreateAccount(accountParams CreateAccountParams) (Account, error) {
	args := m.Called(accountParams)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockCurrentlyRepository) GetAccountByEmail(email string) (Account, error) {
	args := m.Called(email)
	return args.Get(0).(Account), args.Error(1)
}
func (m *MockCurrentlyRepository) AccountExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}
func (m *MockCurrentlyRepository) AccountExistsByUsername(username string) (bool, error) {
	args := m.Called(username)
	return args.Bool(0), args.Error(1)
}
func (m *MockCurrentlyRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	args := m.Called(params)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockCurrentlyRepository) GetRoomByExternalId(externalId string) (Room, error) {
	args := m.Called(externalId)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockCurrentlyRepository) UpdateRoom(params UpdateRoomParams) (Room, error) {
	args := m.Called(params)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockCurrentlyRepository) DeleteRoom(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockCurrentlyRepository) ListRooms(accountId int) ([]Room, error) {
	args := m.Called(accountId)
	return args.Get(0).([]Room), args.Error(1)
}
func (m *MockCurrentlyRepository) CreateUserAppliance(params CreateUserApplianceParams) (UserAppliance, error) {
	args := m.Called(params)
	return args.Get(0).(UserAppliance), args.Error(1)
}
func (m *MockCurrentlyRepository) GetUserApplianceByExternalId(externalId string) (UserAppliance, error) {
	args := m.Called(externalId)
	return args.Get(0).(UserAppliance), args.Error(1)
}
func (m *MockCurrentlyRepository) UpdateUserAppliance(params UpdateUserApplianceParams) (UserAppliance, error) {
	args := m.Called(params)
	return args.Get(0).(UserAppliance), args.Error(1)
}
func (m *MockCurrentlyRepository) DeleteUserAppliance(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockCurrentlyRepository) ListUserAppliances(accountId int) ([]UserAppliance, error) {
	args := m.Called(accountId)
	return args.Get(0).([]UserAppliance), args.Error(1)
}
