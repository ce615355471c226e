package api

import "github.com/liamo132/currently-server/internal/database"

// isOwner reports whether the acting account owns a resource with the
// given owner id. Equality is the sole criterion: there are no roles
// and no sharing. Every read-for-mutation, update, delete and
// room-assignment path checks this; listing is owner-scoped in SQL
// instead.
func isOwner(account database.Account, ownerId int) bool {
	return account.Id == ownerId
}
