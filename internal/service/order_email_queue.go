package service

import (
	"strings"

	"github.com/modahaus-api/internal/logger"
	"github.com/modahaus-api/internal/queue"
	"github.com/modahaus-api/internal/repository"
)

// enqueueOrderConfirmationEmailIfEligible 入队下单确认邮件任务。
// 收件邮箱无法解析时跳过；队列未启用时降级为进程内直发。
func enqueueOrderConfirmationEmailIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, emailService *EmailService, orderID uint) (skipped bool, err error) {
	if orderID == 0 {
		return true, nil
	}
	if orderRepo != nil {
		receiverEmail, lookupErr := orderRepo.ResolveReceiverEmailByOrderID(orderID)
		if lookupErr == nil && strings.TrimSpace(receiverEmail) == "" {
			return true, nil
		}
	}

	if queueClient.Enabled() {
		if err := queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{OrderID: orderID}); err != nil {
			return false, err
		}
		return false, nil
	}

	if emailService == nil {
		return true, nil
	}
	go func() {
		if err := DeliverOrderConfirmationEmail(orderRepo, emailService, orderID); err != nil {
			logger.Warnw("order_confirmation_email_direct_send_failed",
				"order_id", orderID,
				"error", err,
			)
		}
	}()
	return false, nil
}

// enqueuePickupReadyEmailIfEligible 入队提货提醒任务，策略同上。
func enqueuePickupReadyEmailIfEligible(orderRepo repository.OrderRepository, queueClient *queue.Client, emailService *EmailService, orderID uint) (skipped bool, err error) {
	if orderID == 0 {
		return true, nil
	}
	if orderRepo != nil {
		receiverEmail, lookupErr := orderRepo.ResolveReceiverEmailByOrderID(orderID)
		if lookupErr == nil && strings.TrimSpace(receiverEmail) == "" {
			return true, nil
		}
	}

	if queueClient.Enabled() {
		if err := queueClient.EnqueueOrderPickupReadyEmail(queue.OrderPickupReadyEmailPayload{OrderID: orderID}); err != nil {
			return false, err
		}
		return false, nil
	}

	if emailService == nil {
		return true, nil
	}
	go func() {
		if err := DeliverOrderPickupReadyEmail(orderRepo, emailService, orderID); err != nil {
			logger.Warnw("order_pickup_ready_email_direct_send_failed",
				"order_id", orderID,
				"error", err,
			)
		}
	}()
	return false, nil
}

// DeliverOrderConfirmationEmail 加载订单并发送下单确认邮件，供队列消费端与直发降级复用。
func DeliverOrderConfirmationEmail(orderRepo repository.OrderRepository, emailService *EmailService, orderID uint) error {
	input, toEmail, locale, err := resolveOrderEmailContext(orderRepo, orderID)
	if err != nil || toEmail == "" {
		return err
	}
	return emailService.SendOrderConfirmationEmail(toEmail, input, locale)
}

// DeliverOrderPickupReadyEmail 加载订单并发送提货提醒邮件。
func DeliverOrderPickupReadyEmail(orderRepo repository.OrderRepository, emailService *EmailService, orderID uint) error {
	input, toEmail, locale, err := resolveOrderEmailContext(orderRepo, orderID)
	if err != nil || toEmail == "" {
		return err
	}
	return emailService.SendPickupReadyEmail(toEmail, input, locale)
}

func resolveOrderEmailContext(orderRepo repository.OrderRepository, orderID uint) (OrderEmailInput, string, string, error) {
	var input OrderEmailInput
	if orderRepo == nil || orderID == 0 {
		return input, "", "", nil
	}
	order, err := orderRepo.GetByID(orderID)
	if err != nil {
		return input, "", "", err
	}
	if order == nil {
		return input, "", "", nil
	}
	toEmail, err := orderRepo.ResolveReceiverEmailByOrderID(orderID)
	if err != nil {
		return input, "", "", err
	}

	input = OrderEmailInput{
		OrderNo:  order.OrderNo,
		Amount:   order.TotalAmount,
		Currency: order.Currency,
	}
	if order.PickupLocation != nil {
		input.PickupLocationName = order.PickupLocation.Name
	}
	locale := ""
	if order.User != nil {
		locale = order.User.Locale
	}
	return input, strings.TrimSpace(toEmail), locale, nil
}
