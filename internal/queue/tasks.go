package queue

import (
	"encoding/json"

	"github.com/modahaus-api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderConfirmationEmail 下单确认邮件任务
	TaskOrderConfirmationEmail = constants.TaskOrderConfirmationEmail
	// TaskOrderPickupReadyEmail 订单备货完成提货提醒任务
	TaskOrderPickupReadyEmail = constants.TaskOrderPickupReadyEmail
)

// OrderConfirmationEmailPayload 下单确认邮件任务载荷
type OrderConfirmationEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// OrderPickupReadyEmailPayload 提货提醒任务载荷
type OrderPickupReadyEmailPayload struct {
	OrderID uint `json:"order_id"`
}

// NewOrderConfirmationEmailTask 创建下单确认邮件任务
func NewOrderConfirmationEmailTask(payload OrderConfirmationEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderConfirmationEmail, body), nil
}

// NewOrderPickupReadyEmailTask 创建提货提醒任务
func NewOrderPickupReadyEmailTask(payload OrderPickupReadyEmailPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPickupReadyEmail, body), nil
}
