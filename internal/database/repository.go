package database

type CurrentlyRepository interface {
	Ping() error
	CreateAccount(params CreateAccountParams) (Account, error)
	GetAccountByEmail(email string) (Account, error)
	AccountExistsByEmail(email string) (bool, error)
	AccountExistsByUsername(username string) (bool, error)
	CreateRoom(params CreateRoomParams) (Room, error)
	GetRoomByExternalId(externalId string) (Room, error)
	UpdateRoom(params UpdateRoomParams) (Room, error)
	DeleteRoom(id int) error
	ListRooms(accountId int) ([]Room, error)
	CreateUserAppliance(params CreateUserApplianceParams) (UserAppliance, error)
	GetUserApplianceByExternalId(externalId string) (UserAppliance, error)
	UpdateUserAppliance(params UpdateUserApplianceParams) (UserAppliance, error)
	DeleteUserAppliance(id int) error
	ListUserAppliances(accountId int) ([]UserAppliance, error)
}
