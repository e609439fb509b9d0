// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mail

import (
	"fmt"
	"html"
)

// ResetCodeMessage builds the password reset email carrying a one-time code.
func ResetCodeMessage(to, code string) Message {
	return Message{
		To:       to,
		Subject:  "Your password reset code",
		TextBody: fmt.Sprintf("Your password reset code is %s.\n\nIf you did not ask to reset your password, ignore this email.", code),
		HTMLBody: fmt.Sprintf(`<p>Your password reset code is</p><h2 style="letter-spacing:4px">%s</h2><p>If you did not ask to reset your password, ignore this email.</p>`, html.EscapeString(code)),
	}
}

// PurchaseRequest describes stock the shop wants from a supplier.
type PurchaseRequest struct {
	SupplierName string
	Item         string
	Quantity     int
	RequiredDate string
}

// PurchaseRequestMessage builds the email sent to a supplier.
func PurchaseRequestMessage(to string, request PurchaseRequest) Message {
	text := fmt.Sprintf(
		"Dear %s,\n\nWe would like to order %d x %s, required by %s.\n\nPlease confirm availability by replying to this email.",
		request.SupplierName, request.Quantity, request.Item, request.RequiredDate,
	)
	body := fmt.Sprintf(
		`<p>Dear %s,</p><p>We would like to order <b>%d x %s</b>, required by <b>%s</b>.</p><p>Please confirm availability by replying to this email.</p>`,
		html.EscapeString(request.SupplierName), request.Quantity, html.EscapeString(request.Item), html.EscapeString(request.RequiredDate),
	)

	return Message{
		To:       to,
		Subject:  "Purchase request: " + request.Item,
		TextBody: text,
		HTMLBody: body,
	}
}
