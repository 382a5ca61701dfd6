package domain

// MaxOrderTitleLength максимальная длина названия заказа в символах.
const MaxOrderTitleLength = 255

type OrderStatusType string

const (
	OrderStatusOpen            OrderStatusType = "open"
	OrderStatusInProgress      OrderStatusType = "in_progress"
	OrderStatusPendingApproval OrderStatusType = "pending_approval"
	OrderStatusDispute         OrderStatusType = "dispute"
	OrderStatusCompleted       OrderStatusType = "completed"
)

// LedgerKind тип записи финансового журнала.
type LedgerKind string

const (
	LedgerKindDeposit           LedgerKind = "deposit"
	LedgerKindWithdrawal        LedgerKind = "withdrawal"
	LedgerKindOrderPayment      LedgerKind = "order_payment"
	LedgerKindOrderReward       LedgerKind = "order_reward"
	LedgerKindDisputeResolution LedgerKind = "dispute_resolution"
	LedgerKindAdminCredit       LedgerKind = "admin_credit"
	LedgerKindAdminDebit        LedgerKind = "admin_debit"
	LedgerKindVIPPayment        LedgerKind = "vip_payment"
)

type ContentKind string

const (
	ContentKindText     ContentKind = "text"
	ContentKindPhoto    ContentKind = "photo"
	ContentKindDocument ContentKind = "document"
)

func (k ContentKind) Valid() bool {
	switch k {
	case ContentKindText, ContentKindPhoto, ContentKindDocument:
		return true
	default:
		return false
	}
}

// DisputeWinner сторона, в пользу которой решается спор.
type DisputeWinner string

const (
	WinnerCustomer DisputeWinner = "customer"
	WinnerExecutor DisputeWinner = "executor"
)

const (
	// SettingCommissionPercent ключ настройки с процентом комиссии площадки.
	SettingCommissionPercent = "commission_percent"
)
