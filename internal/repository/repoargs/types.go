package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	OrderRepoName       RepositoryName = "order"
	OfferRepoName       RepositoryName = "offer"
	LedgerRepoName      RepositoryName = "ledger"
	SettingRepoName     RepositoryName = "setting"
	ReviewRepoName      RepositoryName = "review"
	ChatMessageRepoName RepositoryName = "chat_message"
	DepositRepoName     RepositoryName = "deposit"
	CategoryRepoName    RepositoryName = "category"
)

// Page параметры постраничной выборки. Limit == 0 означает значение по умолчанию репозитория.
type Page struct {
	Limit  uint
	Offset uint
}
