package vo

import (
	"time"

	"github.com/Xushengqwer/blog_service/models/entities"
)

// SubscriptionResponse 定义了订阅记录的响应数据结构
type SubscriptionResponse struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	Active       bool      `json:"active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// SubscriptionPageVO 定义了订阅名单分页查询的响应结构
type SubscriptionPageVO struct {
	Subscriptions []*SubscriptionResponse `json:"subscriptions"`
	Pagination    Pagination              `json:"pagination"`
}

// MapSubscriptionsToResponsesVO 将订阅实体列表转换为响应VO列表
func MapSubscriptionsToResponsesVO(subs []*entities.Subscription) []*SubscriptionResponse {
	if len(subs) == 0 {
		return []*SubscriptionResponse{}
	}
	responses := make([]*SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		if sub == nil {
			continue
		}
		responses = append(responses, &SubscriptionResponse{
			ID:           sub.ID,
			Email:        sub.Email,
			Active:       sub.Active,
			SubscribedAt: sub.SubscribedAt,
		})
	}
	return responses
}
