package service

import "slices"

// Authorizer проверяет административные полномочия по идентификатору пользователя.
type Authorizer struct {
	admins []int64
}

func NewAuthorizer(adminIDs []int64) *Authorizer {
	return &Authorizer{admins: slices.Clone(adminIDs)}
}

func (a *Authorizer) IsAdmin(userID int64) bool {
	return slices.Contains(a.admins, userID)
}

// AdminIDs возвращает копию списка администраторов.
func (a *Authorizer) AdminIDs() []int64 {
	return slices.Clone(a.admins)
}
