package repoargs

import "github.com/fsdevblog/gigmarket/internal/domain"

type CreateReview struct {
	OrderID    int64
	ReviewerID int64
	RevieweeID int64
	Rating     int
	Text       string
}

type CreateChatMessage struct {
	OrderID       int64
	SenderID      int64
	ContentKind   domain.ContentKind
	Text          string
	AttachmentRef string
}
