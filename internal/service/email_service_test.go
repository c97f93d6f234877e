package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/modahaus-api/internal/config"
	"github.com/modahaus-api/internal/models"
)

func TestSendTextEmail_DisabledAndUnconfigured(t *testing.T) {
	svc := NewEmailService(nil)
	if err := svc.SendCustomEmail("buyer@modahaus.local", "hi", "hello"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled with nil config, got %v", err)
	}

	svc.SetConfig(&config.EmailConfig{Enabled: false, Host: "smtp.modahaus.local", Port: 587, From: "noreply@modahaus.local"})
	if err := svc.SendCustomEmail("buyer@modahaus.local", "hi", "hello"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected ErrEmailServiceDisabled when disabled, got %v", err)
	}

	svc.SetConfig(&config.EmailConfig{Enabled: true, Host: "", Port: 0, From: ""})
	if err := svc.SendCustomEmail("buyer@modahaus.local", "hi", "hello"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected ErrEmailServiceNotConfigured, got %v", err)
	}

	svc.SetConfig(&config.EmailConfig{Enabled: true, Host: "smtp.modahaus.local", Port: 587, From: "noreply@modahaus.local"})
	if err := svc.SendCustomEmail("not-an-address", "hi", "hello"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail for bad recipient, got %v", err)
	}
}

func TestBuildOrderConfirmationContent(t *testing.T) {
	input := OrderEmailInput{
		OrderNo:  "MH20260901123456789012",
		Amount:   models.NewMoneyFromDecimal(decimal.RequireFromString("5848.00")),
		Currency: "KES",
	}

	subject, body := BuildOrderConfirmationContent(input, "en")
	if !strings.Contains(subject, input.OrderNo) {
		t.Fatalf("subject missing order no: %q", subject)
	}
	if !strings.Contains(body, "5848.00") || !strings.Contains(body, "KES") {
		t.Fatalf("body missing amount or currency: %q", body)
	}

	swSubject, _ := BuildOrderConfirmationContent(input, "sw")
	if !strings.Contains(swSubject, "imethibitishwa") {
		t.Fatalf("expected Swahili subject, got %q", swSubject)
	}
	if swSubject == subject {
		t.Fatalf("expected locale-specific subjects, both were %q", subject)
	}
}

func TestBuildPickupReadyContent(t *testing.T) {
	input := OrderEmailInput{
		OrderNo:            "MH20260901123456789012",
		PickupLocationName: "CBD Pickup Station",
	}

	subject, body := BuildPickupReadyContent(input, "en")
	if !strings.Contains(subject, input.OrderNo) {
		t.Fatalf("subject missing order no: %q", subject)
	}
	if !strings.Contains(body, "CBD Pickup Station") {
		t.Fatalf("body missing pickup location: %q", body)
	}

	// Unknown locales fall back to English.
	fallbackSubject, _ := BuildPickupReadyContent(input, "fr")
	if fallbackSubject != subject {
		t.Fatalf("expected English fallback, got %q", fallbackSubject)
	}

	_, blankBody := BuildPickupReadyContent(OrderEmailInput{OrderNo: "MH1", PickupLocationName: "  "}, "en")
	if !strings.Contains(blankBody, "ModaHaus") {
		t.Fatalf("expected default location name in body, got %q", blankBody)
	}
}
