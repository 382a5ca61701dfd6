package repoargs

type CreateUser struct {
	ID       int64
	Username string
}
