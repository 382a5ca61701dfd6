package pgrepo

import (
	"context"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const chatMessageColumns = `id, created_at, order_id, sender_id, content_kind, text, attachment_ref`

type ChatMessageRepository struct {
	conn uow.DBTX
}

func NewChatMessageRepository(conn uow.DBTX) *ChatMessageRepository {
	return &ChatMessageRepository{conn: conn}
}

func (c *ChatMessageRepository) Create(
	ctx context.Context,
	args repoargs.CreateChatMessage,
) (*domain.ChatMessage, error) {
	row := c.conn.QueryRow(ctx, `INSERT INTO chat_messages (order_id, sender_id, content_kind, text, attachment_ref)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+chatMessageColumns,
		args.OrderID, args.SenderID, args.ContentKind, args.Text, args.AttachmentRef)
	msg, err := scanChatMessage(row)
	if err != nil {
		return nil, convertErr(err, "creating chat message for order %d", args.OrderID)
	}
	return msg, nil
}

// ListByOrder возвращает переписку по заказу в хронологическом порядке.
func (c *ChatMessageRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.ChatMessage, error) {
	rows, err := c.conn.Query(ctx, `SELECT `+chatMessageColumns+` FROM chat_messages
		WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, convertErr(err, "listing chat of order %d", orderID)
	}
	msgs, err := collect(rows, scanChatMessage)
	if err != nil {
		return nil, convertErr(err, "scanning chat of order %d", orderID)
	}
	return msgs, nil
}

func scanChatMessage(row pgx.Row) (*domain.ChatMessage, error) {
	var msg domain.ChatMessage
	err := row.Scan(&msg.ID, &msg.CreatedAt, &msg.OrderID, &msg.SenderID, &msg.ContentKind, &msg.Text,
		&msg.AttachmentRef)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &msg, nil
}
