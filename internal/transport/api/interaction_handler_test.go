package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/repository/repoargs"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type InteractionHandlerTestSuite struct {
	HandlerSuite
}

func TestInteractionHandlerSuite(t *testing.T) {
	suite.Run(t, new(InteractionHandlerTestSuite))
}

func (s *InteractionHandlerTestSuite) TestBeginInputCancel() {
	making := domain.Interaction{Kind: domain.InteractionMakingOffer, Step: domain.StepMessage, OrderID: 40}
	s.interactions.EXPECT().Begin(gomock.Any(), userID, domain.InteractionMakingOffer, int64(40)).
		Return(&service.InteractionReply{State: making, Prompt: "Напишите сообщение заказчику"}, nil).Times(1)
	s.interactions.EXPECT().Input(gomock.Any(), userID, "готов").Return(&service.InteractionReply{
		State:  domain.IdleInteraction(),
		Prompt: "Отклик отправлен",
		Result: &domain.Offer{ID: 9, OrderID: 40, ExecutorID: userID, Message: "готов"},
	}, nil).Times(1)
	s.interactions.EXPECT().Cancel(gomock.Any(), userID).Return(nil).Times(1)

	res := s.do(http.MethodPost, InteractionRoute, `{"kind":"making_offer","order_id":40}`, s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Equal(map[string]any{"kind": "making_offer", "step": "message", "order_id": float64(40)}, res.json()["state"])
	s.Equal("Напишите сообщение заказчику", res.json()["prompt"])

	res = s.do(http.MethodPost, InteractionInputRoute, `{"text":"готов"}`, s.userToken)
	s.Equal(http.StatusOK, res.status)
	body := res.json()
	s.Equal("idle", body["state"].(map[string]any)["kind"])
	s.Equal("готов", body["result"].(map[string]any)["message"])

	res = s.do(http.MethodDelete, InteractionRoute, "", s.userToken)
	s.Equal(http.StatusNoContent, res.status)
}

func (s *InteractionHandlerTestSuite) TestShowAndRejections() {
	s.interactions.EXPECT().Current(gomock.Any(), userID).Return(&domain.Interaction{Kind: domain.InteractionIdle}, nil).Times(1)
	s.interactions.EXPECT().Input(gomock.Any(), userID, "").
		Return(nil, domain.Reject(domain.ErrInvalidTransition, "no active interaction")).Times(1)

	res := s.do(http.MethodGet, InteractionRoute, "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.JSONEq(`{"state":{"kind":"idle","step":""}}`, string(res.body))

	res = s.do(http.MethodPost, InteractionInputRoute, `{"text":""}`, s.userToken)
	s.Equal(http.StatusConflict, res.status)
	s.Equal("no active interaction", res.json()["reason"])

	res = s.do(http.MethodPost, InteractionRoute, `{"order_id":40}`, s.userToken)
	s.Equal(http.StatusUnprocessableEntity, res.status)
}

type ChatAndReviewsHandlerTestSuite struct {
	HandlerSuite
}

func TestChatAndReviewsHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatAndReviewsHandlerTestSuite))
}

func (s *ChatAndReviewsHandlerTestSuite) TestChat() {
	s.chat.EXPECT().Send(gomock.Any(), service.SendMessageArgs{
		SenderID:    userID,
		OrderID:     40,
		ContentKind: domain.ContentKindText,
		Text:        "привет",
	}).Return(&domain.ChatMessage{ID: 1, OrderID: 40, SenderID: userID, ContentKind: domain.ContentKindText, Text: "привет"}, nil).Times(1)
	s.chat.EXPECT().Log(gomock.Any(), userID, int64(40)).
		Return([]domain.ChatMessage{{ID: 1, OrderID: 40, SenderID: userID, ContentKind: domain.ContentKindPhoto, AttachmentRef: "file-1"}}, nil).Times(1)
	s.chat.EXPECT().Log(gomock.Any(), adminID, int64(40)).Return([]domain.ChatMessage{}, nil).Times(1)
	s.chat.EXPECT().Log(gomock.Any(), userID, int64(41)).
		Return(nil, domain.Reject(domain.ErrNotAuthorized, "not a participant of order 41")).Times(1)

	res := s.do(http.MethodPost, "/orders/40/chat", `{"content_kind":"text","text":"привет"}`, s.userToken)
	s.Equal(http.StatusCreated, res.status)
	s.Equal("привет", res.json()["text"])

	res = s.do(http.MethodPost, "/orders/40/chat", `{"content_kind":"video"}`, s.userToken)
	s.Equal(http.StatusUnprocessableEntity, res.status)

	res = s.do(http.MethodGet, "/orders/40/chat", "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Contains(string(res.body), `"content_kind":"photo","attachment_ref":"file-1"`)

	res = s.do(http.MethodGet, "/admin/orders/40/chat", "", s.adminToken)
	s.Equal(http.StatusOK, res.status)

	res = s.do(http.MethodGet, "/orders/41/chat", "", s.userToken)
	s.Equal(http.StatusForbidden, res.status)
}

func (s *ChatAndReviewsHandlerTestSuite) TestReviews() {
	s.reviews.EXPECT().Leave(gomock.Any(), service.LeaveReviewArgs{
		ReviewerID: userID,
		OrderID:    40,
		Rating:     5,
		Text:       "отлично",
	}).Return(&domain.Review{ID: 3, OrderID: 40, ReviewerID: userID, RevieweeID: 1002, Rating: 5, Text: "отлично"}, nil).Times(1)
	s.reviews.EXPECT().ListFor(gomock.Any(), int64(1002), repoargs.Page{}).
		Return([]domain.Review{{ID: 3, RevieweeID: 1002, Rating: 5}}, nil).Times(1)

	res := s.do(http.MethodPost, "/orders/40/reviews", `{"rating":5,"text":"отлично"}`, s.userToken)
	s.Equal(http.StatusCreated, res.status)
	s.InDelta(1002, res.json()["reviewee_id"], 0)

	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{}`} {
		res = s.do(http.MethodPost, "/orders/40/reviews", body, s.userToken)
		s.Equal(http.StatusUnprocessableEntity, res.status, body)
	}

	res = s.do(http.MethodGet, "/users/1002/reviews", "", s.userToken)
	s.Equal(http.StatusOK, res.status)
	s.Contains(string(res.body), `"rating":5`)
}
