package worker

import (
	"context"
	"encoding/json"

	"github.com/modahaus-api/internal/logger"
	"github.com/modahaus-api/internal/provider"
	"github.com/modahaus-api/internal/queue"
	"github.com/modahaus-api/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderConfirmationEmail, c.handleOrderConfirmationEmail)
	mux.HandleFunc(queue.TaskOrderPickupReadyEmail, c.handleOrderPickupReadyEmail)
}

func (c *Consumer) handleOrderConfirmationEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_confirmation_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderConfirmationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_confirmation_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_confirmation_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_confirmation_email_skip_email_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := service.DeliverOrderConfirmationEmail(c.OrderRepo, c.EmailService, payload.OrderID); err != nil {
		logger.Warnw("worker_order_confirmation_email_send_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleOrderPickupReadyEmail(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_pickup_ready_email_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderPickupReadyEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_pickup_ready_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_pickup_ready_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.EmailService == nil {
		logger.Warnw("worker_order_pickup_ready_email_skip_email_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := service.DeliverOrderPickupReadyEmail(c.OrderRepo, c.EmailService, payload.OrderID); err != nil {
		logger.Warnw("worker_order_pickup_ready_email_send_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
