package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Subscription 订阅实体
// - 使用场景: 新闻通讯（Newsletter）的邮箱订阅名单
// - 表名: subscriptions
type Subscription struct {
	entities.BaseModel

	// 订阅邮箱，全局唯一
	// - 退订不删行，只把 Active 置为 false，邮箱重新订阅时复用同一行；
	//   uniqueIndex 保证同一邮箱不会出现两条记录
	Email string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 是否有效，退订后置为 false
	Active bool `gorm:"default:true;index"`

	// 最近一次订阅时间，重新订阅时刷新
	SubscribedAt time.Time `gorm:"not null"`
}
