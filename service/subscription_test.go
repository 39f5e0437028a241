package service

import (
	"context"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/blog_service/models/entities"
)

func TestResolveSubscribe(t *testing.T) {
	// 无历史记录：插入新行
	assert.Equal(t, subscribeCreate, resolveSubscribe(nil))

	// 已退订：复活同一行
	assert.Equal(t, subscribeReactivate, resolveSubscribe(&entities.Subscription{Active: false}))

	// 已有效订阅：重复订阅
	assert.Equal(t, subscribeDuplicate, resolveSubscribe(&entities.Subscription{Active: true}))
}

// 订阅邮箱先归一化再查重和落库，"Foo@Bar.com " 与 "foo@bar.com" 是同一地址。
func TestSubscribeNormalizesEmail(t *testing.T) {
	var lookedUp string
	var created *entities.Subscription
	subRepo := &fakeSubscriptionRepo{
		getByEmail: func(_ context.Context, email string) (*entities.Subscription, error) {
			lookedUp = email
			return nil, commonerrors.ErrRepoNotFound
		},
		createSubscription: func(_ context.Context, sub *entities.Subscription) error {
			created = sub
			return nil
		},
	}

	svc := NewSubscriptionService(subRepo, newTestLogger(t))

	_, err := svc.Subscribe(context.Background(), "  Reader@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", lookedUp)
	require.NotNil(t, created)
	assert.Equal(t, "reader@example.com", created.Email)
	assert.True(t, created.Active)
}

// 退订用归一化后的邮箱匹配记录，大小写不同的退订请求能命中原订阅。
func TestUnsubscribeNormalizesEmail(t *testing.T) {
	var lookedUp string
	var saved *entities.Subscription
	subRepo := &fakeSubscriptionRepo{
		getByEmail: func(_ context.Context, email string) (*entities.Subscription, error) {
			lookedUp = email
			return &entities.Subscription{Email: email, Active: true}, nil
		},
		saveSubscription: func(_ context.Context, sub *entities.Subscription) error {
			saved = sub
			return nil
		},
	}

	svc := NewSubscriptionService(subRepo, newTestLogger(t))

	err := svc.Unsubscribe(context.Background(), "Reader@Example.com")
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", lookedUp)
	require.NotNil(t, saved)
	assert.False(t, saved.Active)
}
