package domain

// InteractionKind вид многошагового действия пользователя.
type InteractionKind string

const (
	InteractionIdle          InteractionKind = "idle"
	InteractionCreatingOrder InteractionKind = "creating_order"
	InteractionMakingOffer   InteractionKind = "making_offer"
	InteractionLeavingReview InteractionKind = "leaving_review"
	InteractionWithdrawing   InteractionKind = "withdrawing"
)

// Шаги многошаговых действий.
const (
	StepCategory    = "category"
	StepTitle       = "title"
	StepDescription = "description"
	StepPrice       = "price"
	StepMessage     = "message"
	StepRating      = "rating"
	StepText        = "text"
	StepAmount      = "amount"
	StepAddress     = "address"
	StepConfirm     = "confirm"
	StepDone        = "done"
)

// Interaction состояние незавершенного действия пользователя. Data накапливает введенные на
// предыдущих шагах значения. Изменения баланса происходят только на последнем шаге.
type Interaction struct {
	Kind    InteractionKind   `json:"kind"`
	Step    string            `json:"step"`
	OrderID int64             `json:"order_id,omitempty"`
	Data    map[string]string `json:"data,omitempty"`
}

// IdleInteraction пустое состояние пользователя без незавершенных действий.
func IdleInteraction() Interaction {
	return Interaction{Kind: InteractionIdle}
}
